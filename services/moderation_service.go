package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	appconfig "github.com/yansanity1998/ojt-hours-tracker/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

var ErrImageRejected = errors.New("image rejected by moderation")

// ModerationService screens journal photos before they are uploaded.
type ModerationService struct {
	client *rekognition.Client
}

func NewModerationService() (*ModerationService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(appconfig.App.AWSRegion))
	if err != nil {
		return nil, err
	}
	return &ModerationService{client: rekognition.NewFromConfig(cfg)}, nil
}

// CheckImage rejects a base64 data-URI image that trips any moderation
// label above the confidence floor.
func (m *ModerationService) CheckImage(base64Img string) error {
	if !strings.HasPrefix(base64Img, "data:image") {
		return errors.New("invalid data URI")
	}
	parts := strings.SplitN(base64Img, ",", 2)
	if len(parts) != 2 {
		return errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return err
	}

	out, err := m.client.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: data},
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return err
	}
	if len(out.ModerationLabels) > 0 {
		return ErrImageRejected
	}
	return nil
}
