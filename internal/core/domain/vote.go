package domain

// DefaultImageHash is the partition key every page render reads from.
const DefaultImageHash = "Test Hash 2"

type Choice string

const (
	ChoiceCategory1 Choice = "Category1Vote"
	ChoiceCategory2 Choice = "Category2Vote"
)

// VoteRecord is the single persisted entity, keyed by ImageHash.
// The json tags double as the page rendering of a record.
type VoteRecord struct {
	ImageHash      string `json:"ImageHash" dynamodbav:"ImageHash"`
	Category1      string `json:"Category1" dynamodbav:"Category1"`
	Category2      string `json:"Category2" dynamodbav:"Category2"`
	Category1Votes int64  `json:"Category1Votes" dynamodbav:"Category1Votes"`
	Category2Votes int64  `json:"Category2Votes" dynamodbav:"Category2Votes"`
}

type Vote struct {
	ImageHash string
	Category1 string
	Category2 string
	Choice    Choice
}

// VoteFromParams builds the vote a form submission stands for. Parameters
// that are missing fall back to fallbackHash and empty category labels.
func VoteFromParams(params Params, fallbackHash string) Vote {
	vote := Vote{
		ImageHash: params.Get("imageHash"),
		Category1: params.Get("category1"),
		Category2: params.Get("category2"),
		Choice:    Choice(params.Get("vote")),
	}
	if vote.ImageHash == "" {
		vote.ImageHash = fallbackHash
	}
	return vote
}

// Increments returns how much each category count grows by.
func (v Vote) Increments() (category1, category2 int64) {
	switch v.Choice {
	case ChoiceCategory1:
		return 1, 0
	case ChoiceCategory2:
		return 0, 1
	}
	return 0, 0
}
