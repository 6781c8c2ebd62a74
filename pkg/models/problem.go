package models

// Problem is an RFC 7807 Problem Details body.
type Problem struct {
	Type     string `json:"type" example:"https://olympushub.dev/problems/bad-request"`
	Title    string `json:"title" example:"Bad Request"`
	Status   int    `json:"status" example:"400"`
	Detail   string `json:"detail,omitempty" example:"unknown metric id"`
	Instance string `json:"instance,omitempty" example:"/api/v1/alerts/rules"`
}

// Problem type URIs.
const (
	ProblemTypeNotFound    = "https://olympushub.dev/problems/not-found"
	ProblemTypeBadRequest  = "https://olympushub.dev/problems/bad-request"
	ProblemTypeInternal    = "https://olympushub.dev/problems/internal-error"
	ProblemTypeRateLimited = "https://olympushub.dev/problems/rate-limited"
	ProblemTypeUnavailable = "https://olympushub.dev/problems/unavailable"
	ProblemTypeConflict    = "https://olympushub.dev/problems/conflict"
)

// ProblemTypeFor maps an HTTP status to its problem type URI.
func ProblemTypeFor(status int) string {
	switch status {
	case 400, 422:
		return ProblemTypeBadRequest
	case 404:
		return ProblemTypeNotFound
	case 409:
		return ProblemTypeConflict
	case 429:
		return ProblemTypeRateLimited
	case 503:
		return ProblemTypeUnavailable
	}
	return ProblemTypeInternal
}
