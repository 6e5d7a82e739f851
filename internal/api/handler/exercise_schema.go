package handler

type addExerciseRequest struct {
	UserID      string `json:"userId"      form:"userId"      validate:"required,objectid"`
	Description string `json:"description" form:"description" validate:"required"`
	Duration    int    `json:"duration"    form:"duration"    validate:"required,gt=0"`
	Date        string `json:"date"        form:"date"        validate:"omitempty,dateonly"`
}

type logQueryRequest struct {
	UserID string `query:"userId" validate:"required,objectid"`
	From   string `query:"from"   validate:"omitempty,dateonly"`
	To     string `query:"to"     validate:"omitempty,dateonly"`
	Limit  int    `query:"limit"  validate:"omitempty,gt=0"`
}

type addExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// logEntryResponse carries exactly the three exposed exercise fields; internal
// ids and the user reference never leave the service.
type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Log      []logEntryResponse `json:"log"`
	Count    int                `json:"count"`
}
