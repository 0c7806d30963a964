package domain

// Category is a behavioral label derived from a user's income-to-expense
// ratio, used for notification segmentation.
type Category string

const (
	CategoryUncategorized Category = "Uncategorized"
	CategoryCouchPotato   Category = "Couch Potato"
	CategoryInTraining    Category = "In Training"
	CategoryAthlete       Category = "Athlete"
	CategoryIronman       Category = "Ironman"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryUncategorized,
	CategoryCouchPotato,
	CategoryInTraining,
	CategoryAthlete,
	CategoryIronman,
}

// ParseCategory validates a caller-supplied category name.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Classify applies the rating rules in precedence order. The income==expense
// rule intentionally fires for the degenerate 0==0 case: a user whose ledger
// sums are both zero rates In Training, not Uncategorized. Uncategorized is
// reserved for users with no ledger activity at all.
func Classify(income, expense float64) Category {
	switch {
	case income > 2*expense:
		return CategoryIronman
	case income > expense:
		return CategoryAthlete
	case income == expense:
		return CategoryInTraining
	default:
		return CategoryCouchPotato
	}
}

// UserCategory is one user's derived classification. It is recomputed on
// demand, never persisted.
type UserCategory struct {
	UserID   string   `json:"user_id"`
	Name     string   `json:"name,omitempty"` // display name, blank when no profile exists
	Income   float64  `json:"income"`
	Expense  float64  `json:"expense"`
	Category Category `json:"category"`
}
