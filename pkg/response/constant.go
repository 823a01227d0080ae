package response

// Response messages and codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode     = 400
	InternalServerErrorCode = 500
)

// Wire formats for Date and DateTime.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
