package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"
	"github.com/yansanity1998/ojt-hours-tracker/utils"

	"gorm.io/gorm"
)

// MaxNoteImages caps how many photos a daily note can carry.
const MaxNoteImages = 3

var (
	ErrDuplicateNoteDate = errors.New("a note already exists for that date")
	ErrNoteNotFound      = errors.New("note not found")
	ErrTooManyImages     = fmt.Errorf("a note holds at most %d images", MaxNoteImages)
)

// NoteView is a note with its image list decoded.
type NoteView struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
}

// moderator is set at boot; nil means uploads skip the moderation gate
// (local dev without AWS credentials).
var moderator *ModerationService

func InitNoteModeration(m *ModerationService) {
	moderator = m
}

func noteView(n *models.Note) NoteView {
	v := NoteView{
		ID:        n.ID,
		Date:      n.Date,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
	if n.ImageURL != "" {
		_ = json.Unmarshal([]byte(n.ImageURL), &v.ImageURLs)
	}
	return v
}

func encodeImageURLs(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	encoded, _ := json.Marshal(urls)
	return string(encoded)
}

func uploadNoteImages(images []string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if moderator != nil {
			if err := moderator.CheckImage(img); err != nil {
				return nil, err
			}
		}
		url, err := utils.UploadBase64ImageToS3(img, "note-photos")
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// ListNotes returns the user's journal, newest date first.
func ListNotes(userID uint) ([]NoteView, error) {
	var rows []models.Note
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]NoteView, 0, len(rows))
	for i := range rows {
		out = append(out, noteView(&rows[i]))
	}
	return out, nil
}

// AddNote creates the journal entry for a date. Photos are moderated and
// uploaded before the row is written so a failed upload leaves nothing
// half-saved.
func AddNote(userID uint, date, content string, images []string) (*NoteView, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	if len(images) > MaxNoteImages {
		return nil, ErrTooManyImages
	}

	var count int64
	if err := config.DB.Model(&models.Note{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateNoteDate
	}

	urls, err := uploadNoteImages(images)
	if err != nil {
		return nil, err
	}

	note := models.Note{
		UserID:   userID,
		Date:     date,
		Content:  content,
		ImageURL: encodeImageURLs(urls),
	}
	if err := config.DB.Create(&note).Error; err != nil {
		return nil, err
	}

	Notify(userID, models.NotifNoteAdded, fmt.Sprintf("Note added for %s.", date))
	v := noteView(&note)
	return &v, nil
}

// UpdateNoteInput merges kept URLs with freshly uploaded photos; the
// combined set still respects the image cap.
type UpdateNoteInput struct {
	Date      string   `json:"date"`
	Content   string   `json:"content"`
	KeepURLs  []string `json:"keep_urls"`
	NewImages []string `json:"new_images"`
}

func UpdateNote(userID uint, id string, in UpdateNoteInput) (*NoteView, error) {
	var note models.Note
	err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Date != "" && in.Date != note.Date {
		if _, err := time.Parse("2006-01-02", in.Date); err != nil {
			return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
		var count int64
		if err := config.DB.Model(&models.Note{}).
			Where("user_id = ? AND date = ? AND id <> ?", userID, in.Date, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateNoteDate
		}
		note.Date = in.Date
	}

	if len(in.KeepURLs)+len(in.NewImages) > MaxNoteImages {
		return nil, ErrTooManyImages
	}
	uploaded, err := uploadNoteImages(in.NewImages)
	if err != nil {
		return nil, err
	}
	note.ImageURL = encodeImageURLs(append(in.KeepURLs, uploaded...))
	note.Content = in.Content

	if err := config.DB.Save(&note).Error; err != nil {
		return nil, err
	}

	Notify(userID, models.NotifNoteUpdated, fmt.Sprintf("Note for %s updated.", note.Date))
	v := noteView(&note)
	return &v, nil
}

func DeleteNote(userID uint, id string) error {
	var note models.Note
	err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		return err
	}
	if err := config.DB.Delete(&note).Error; err != nil {
		return err
	}

	Notify(userID, models.NotifNoteDeleted, fmt.Sprintf("Note for %s deleted.", note.Date))
	return nil
}
