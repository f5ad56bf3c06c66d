package models

type RegisterResponse struct {
	Player       string `json:"player"`
	CurrentScore int    `json:"current_score"`
	CurrentLevel int    `json:"current_level"`
}

type QuestionResponse struct {
	MathQuestion string  `json:"math_question"`
	CurrentLevel int     `json:"current_level"`
	AIPrediction float64 `json:"ai_prediction"`
	Streak       int     `json:"streak"`
}

type AnswerRequest struct {
	Player     string `json:"player"`
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}

type AnswerResponse struct {
	IsCorrect      bool     `json:"is_correct"`
	CorrectAnswer  *float64 `json:"correct_answer,omitempty"`
	NewLevel       int      `json:"new_level"`
	Score          int      `json:"score"`
	Progress       int      `json:"progress"`
	AIPrediction   float64  `json:"ai_prediction"`
	Streak         int      `json:"streak"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	Message        string   `json:"message,omitempty"`
}

type LeaderboardEntry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type AdminStats struct {
	Players          int  `json:"players"`
	TrainingSamples  int  `json:"training_samples"`
	PredictorTrained bool `json:"predictor_trained"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
