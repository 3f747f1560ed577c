package models

import "time"

// User represents a user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WellnessLog is a user's daily wellness check-in. One log per date is the
// normal case but is not enforced upstream; aggregation treats duplicates as
// independent samples.
type WellnessLog struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Date             Date      `json:"date"`
	SleepHours       float64   `json:"sleep_hours"`
	StressLevel      int       `json:"stress_level"`
	WaterIntake      float64   `json:"water_intake"`
	ExerciseDuration float64   `json:"exercise_duration"`
	CaffeineIntake   *float64  `json:"caffeine_intake,omitempty"`
	Mood             *int      `json:"mood,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BiometricSample is a single device or manual biometric reading.
type BiometricSample struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Timestamp        time.Time `json:"timestamp"`
	HeartRate        int       `json:"heart_rate"`
	HRV              *float64  `json:"hrv,omitempty"`
	RestingHeartRate *int      `json:"resting_heart_rate,omitempty"`
	SystolicBP       *int      `json:"systolic_bp,omitempty"`
	DiastolicBP      *int      `json:"diastolic_bp,omitempty"`
	Steps            *int      `json:"steps,omitempty"`
	DataSource       string    `json:"data_source"`
	CreatedAt        time.Time `json:"created_at"`
}

// PainLocation identifies where an episode's pain was felt.
type PainLocation string

const (
	PainLocationLeft  PainLocation = "left"
	PainLocationRight PainLocation = "right"
	PainLocationBoth  PainLocation = "both"
	PainLocationFront PainLocation = "front"
	PainLocationBack  PainLocation = "back"
	PainLocationAll   PainLocation = "all"
)

// EpisodeEvent is a recorded headache/migraine episode.
type EpisodeEvent struct {
	ID                  string       `json:"id"`
	UserID              string       `json:"user_id"`
	StartTime           time.Time    `json:"start_time"`
	EndTime             *time.Time   `json:"end_time,omitempty"`
	Severity            int          `json:"severity"`
	PainLocation        PainLocation `json:"pain_location"`
	Symptoms            []string     `json:"symptoms"`
	Triggers            []string     `json:"triggers"`
	MedicationsTaken    []string     `json:"medications_taken,omitempty"`
	ReliefMethods       []string     `json:"relief_methods,omitempty"`
	EffectivenessRating *int         `json:"effectiveness_rating,omitempty"`
	Notes               *string      `json:"notes,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// DurationHours returns the episode length in hours, rounded to two decimals,
// or nil while the episode is still open.
func (e *EpisodeEvent) DurationHours() *float64 {
	if e.EndTime == nil {
		return nil
	}
	hours := e.EndTime.Sub(e.StartTime).Hours()
	rounded := float64(int(hours*100+0.5)) / 100
	return &rounded
}

// CreateWellnessLogRequest represents the request to create a wellness log
type CreateWellnessLogRequest struct {
	Date             Date     `json:"date" binding:"required"`
	SleepHours       float64  `json:"sleep_hours" binding:"min=0"`
	StressLevel      int      `json:"stress_level" binding:"required,min=1,max=10"`
	WaterIntake      float64  `json:"water_intake" binding:"min=0"`
	ExerciseDuration float64  `json:"exercise_duration" binding:"min=0"`
	CaffeineIntake   *float64 `json:"caffeine_intake"`
	Mood             *int     `json:"mood" binding:"omitempty,min=1,max=10"`
	Notes            *string  `json:"notes"`
}

// CreateBiometricSampleRequest represents the request to record a biometric sample
type CreateBiometricSampleRequest struct {
	Timestamp        time.Time `json:"timestamp" binding:"required"`
	HeartRate        int       `json:"heart_rate" binding:"required,min=20,max=300"`
	HRV              *float64  `json:"hrv"`
	RestingHeartRate *int      `json:"resting_heart_rate"`
	SystolicBP       *int      `json:"systolic_bp"`
	DiastolicBP      *int      `json:"diastolic_bp"`
	Steps            *int      `json:"steps"`
	DataSource       string    `json:"data_source"`
}

// CreateEpisodeRequest represents the request to record an episode
type CreateEpisodeRequest struct {
	StartTime           time.Time    `json:"start_time" binding:"required"`
	EndTime             *time.Time   `json:"end_time"`
	Severity            int          `json:"severity" binding:"required,min=1,max=10"`
	PainLocation        PainLocation `json:"pain_location" binding:"required,oneof=left right both front back all"`
	Symptoms            []string     `json:"symptoms"`
	Triggers            []string     `json:"triggers"`
	MedicationsTaken    []string     `json:"medications_taken"`
	ReliefMethods       []string     `json:"relief_methods"`
	EffectivenessRating *int         `json:"effectiveness_rating" binding:"omitempty,min=1,max=5"`
	Notes               *string      `json:"notes"`
}

// UpdateEpisodeRequest represents a partial episode update. Nullable fields
// distinguish "leave unchanged" from "clear".
type UpdateEpisodeRequest struct {
	EndTime             NullableTime   `json:"end_time"`
	Severity            *int           `json:"severity" binding:"omitempty,min=1,max=10"`
	PainLocation        *PainLocation  `json:"pain_location" binding:"omitempty,oneof=left right both front back all"`
	Symptoms            []string       `json:"symptoms"`
	Triggers            []string       `json:"triggers"`
	MedicationsTaken    []string       `json:"medications_taken"`
	ReliefMethods       []string       `json:"relief_methods"`
	EffectivenessRating *int           `json:"effectiveness_rating" binding:"omitempty,min=1,max=5"`
	Notes               NullableString `json:"notes"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
