package clinicflow

import (
	"context"
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

type FontStyle string

const (
	FontModern  FontStyle = "modern"
	FontClassic FontStyle = "classic"
	FontRounded FontStyle = "rounded"
	FontElegant FontStyle = "elegant"
)

type VisualStyle string

const (
	VisualMinimal  VisualStyle = "minimal"
	VisualVibrant  VisualStyle = "vibrant"
	VisualClinical VisualStyle = "clinical"
	VisualWarm     VisualStyle = "warm"
)

type BrandVoice string

const (
	VoiceWelcoming    BrandVoice = "welcoming"
	VoiceTechnical    BrandVoice = "technical"
	VoiceApproachable BrandVoice = "approachable"
	VoicePremium      BrandVoice = "premium"
	VoiceYouthful     BrandVoice = "youthful"
)

type MarketingGoal string

const (
	GoalMorePatients   MarketingGoal = "more_patients"
	GoalBrandAuthority MarketingGoal = "brand_authority"
	GoalRetention      MarketingGoal = "retention"
	GoalLaunchService  MarketingGoal = "launch_service"
)

// MaxBrandVoices caps how many voice tags a clinic may pick in the wizard.
const MaxBrandVoices = 3

// QuizAnswers is the snapshot collected by the onboarding wizard. It lives
// only inside a wizard instance until submitted as the project's brand
// configuration.
type QuizAnswers struct {
	ClinicName      string          `json:"clinic_name" db:"clinic_name"`
	WhatsApp        string          `json:"whatsapp" db:"whatsapp"`
	Instagram       string          `json:"instagram" db:"instagram"`
	City            string          `json:"city" db:"city"`
	PrimaryColor    string          `json:"primary_color" db:"primary_color"`
	SecondaryColor  string          `json:"secondary_color" db:"secondary_color"`
	FontStyle       FontStyle       `json:"font_style" db:"font_style"`
	BrandVoices     []BrandVoice    `json:"brand_voices"`
	MarketingGoals  []MarketingGoal `json:"marketing_goals"`
	Differentiators string          `json:"differentiators" db:"differentiators"`
	Slogan          string          `json:"slogan" db:"slogan"`
	VisualStyle     VisualStyle     `json:"visual_style" db:"visual_style"`
}

type Project struct {
	ID        string       `json:"id" db:"id"`
	ClinicID  string       `json:"clinic_id" db:"clinic_id"`
	Name      string       `json:"name" db:"name"`
	Brand     *QuizAnswers `json:"brand,omitempty"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

type QuizService interface {
	SubmitQuiz(ctx context.Context, projectID string, answers QuizAnswers) error
}
