package models

// Status is the soft lifecycle flag carried by every health document.
type Status string

const (
	StatusActive  Status = "A"
	StatusDeleted Status = "D"
	StatusPending Status = "P"
	StatusReject  Status = "R"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDeleted, StatusPending, StatusReject:
		return true
	}
	return false
}

type CreatorType string

const (
	CreatorUser   CreatorType = "U"
	CreatorSystem CreatorType = "S"
)

func (c CreatorType) Valid() bool {
	return c == CreatorUser || c == CreatorSystem
}

type ChallengeState int

const (
	StateSuspended ChallengeState = 0
	StateActive    ChallengeState = 1
)

func (s ChallengeState) Valid() bool {
	return s == StateSuspended || s == StateActive
}

type ChallengeAction string

const (
	ActionEliminating   ChallengeAction = "ELIMINATING"
	ActionIncreasing    ChallengeAction = "INCREASING"
	ActionSupplementing ChallengeAction = "SUPPLEMENTING"
)

func (a ChallengeAction) Valid() bool {
	switch a {
	case ActionEliminating, ActionIncreasing, ActionSupplementing:
		return true
	}
	return false
}

// Completion is how well a day of a challenge went.
type Completion string

const (
	CompletionYes       Completion = "YES"
	CompletionMostlyYes Completion = "MOSTLY YES"
	CompletionMostlyNo  Completion = "MOSTLY NO"
	CompletionNope      Completion = "NOPE. FELL OFF THE WAGON TODAY"
)

func (c Completion) Valid() bool {
	switch c {
	case CompletionYes, CompletionMostlyYes, CompletionMostlyNo, CompletionNope:
		return true
	}
	return false
}

// Choice pairs a stored value with its human label.
type Choice struct {
	Value interface{} `json:"value"`
	Label string      `json:"label"`
}

var (
	StatusChoices = []Choice{
		{StatusActive, "Active"},
		{StatusDeleted, "Deleted"},
		{StatusPending, "Pending"},
		{StatusReject, "Reject"},
	}
	CreatorTypeChoices = []Choice{
		{CreatorUser, "USER"},
		{CreatorSystem, "SYSTEM"},
	}
	ChallengeStateChoices = []Choice{
		{StateSuspended, "Suspended"},
		{StateActive, "Active"},
	}
	ChallengeActionChoices = []Choice{
		{ActionEliminating, "elimination"},
		{ActionIncreasing, "increasing"},
		{ActionSupplementing, "supplementing"},
	}
	CompletionChoices = []Choice{
		{CompletionYes, string(CompletionYes)},
		{CompletionMostlyYes, string(CompletionMostlyYes)},
		{CompletionMostlyNo, string(CompletionMostlyNo)},
		{CompletionNope, string(CompletionNope)},
	}
)
