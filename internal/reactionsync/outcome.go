package reactionsync

import (
	"errors"
	"fmt"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

// OutcomeKind classifies the result of a mutation.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeUnauthorized
	OutcomeFailure
	// OutcomeDropped marks an activation that hit a pending target and sent nothing.
	OutcomeDropped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeFailure:
		return "failure"
	case OutcomeDropped:
		return "dropped"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the classified result of one mutation. Likes and Dislikes are set
// for OutcomeSuccess, Detail for OutcomeFailure.
type Outcome struct {
	Kind     OutcomeKind
	Likes    int
	Dislikes int
	Detail   string
}

func Success(likes, dislikes int) Outcome {
	return Outcome{Kind: OutcomeSuccess, Likes: likes, Dislikes: dislikes}
}

func Unauthorized() Outcome {
	return Outcome{Kind: OutcomeUnauthorized}
}

func Dropped() Outcome {
	return Outcome{Kind: OutcomeDropped}
}

func Failure(format string, args ...interface{}) Outcome {
	return Outcome{Kind: OutcomeFailure, Detail: fmt.Sprintf(format, args...)}
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("success(likes=%d, dislikes=%d)", o.Likes, o.Dislikes)
	case OutcomeFailure:
		return "failure: " + o.Detail
	default:
		return o.Kind.String()
	}
}

// MutationRequest asks the server to toggle one reaction on one target.
type MutationRequest struct {
	target    *Target
	direction entity.ReactionType
	token     string
}

func NewMutationRequest(target *Target, direction entity.ReactionType, token string) (MutationRequest, error) {
	if target == nil {
		return MutationRequest{}, errors.New("mutation request needs a target")
	}
	if !direction.Valid() {
		return MutationRequest{}, fmt.Errorf("invalid reaction direction %q", direction)
	}
	return MutationRequest{target: target, direction: direction, token: token}, nil
}

func (r MutationRequest) Target() *Target                { return r.target }
func (r MutationRequest) Direction() entity.ReactionType { return r.direction }
func (r MutationRequest) Token() string                  { return r.token }
