package config

import (
	"fmt"

	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Env holds everything the service reads from the environment.
type Env struct {
	Port       string `envconfig:"PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	AWSRegion     string `envconfig:"AWS_REGION"`
	S3Bucket      string `envconfig:"S3_BUCKET"`
	CloudFrontURL string `envconfig:"CLOUDFRONT_URL"`
	SESEmail      string `envconfig:"SES_EMAIL"`
	SNSFCMArn     string `envconfig:"SNS_FCM_ARN"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

var (
	App Env
	DB  *gorm.DB
)

func LoadEnv() error {
	// .env is optional outside local dev; deployments inject the environment directly.
	_ = godotenv.Load()
	return envconfig.Process("", &App)
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		App.DBHost,
		App.DBUser,
		App.DBPassword,
		App.DBName,
		App.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.Fatal("failed to connect to database: " + err.Error())
	}

	if err := Migrate(DB); err != nil {
		Log.Fatal("automigrate failed: " + err.Error())
	}
}

// Migrate is split out so tests can run it against their own handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Settings{},
		&models.TimeEntry{},
		&models.Note{},
		&models.Notification{},
		&models.UserDevice{},
	)
}
