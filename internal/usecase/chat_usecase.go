package usecase

import (
	"context"
	"log"
	"strings"

	"rozgarhub/internal/chat"
	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/domain/user"
	"rozgarhub/internal/repository"

	"github.com/google/uuid"
)

const chatResultLimit = 5

// ExternalSearcher is the cached external-source boundary the orchestrator
// talks to. Failures here are never fatal for the chat path.
type ExternalSearcher interface {
	Search(ctx context.Context, query, location string, page, limit int) ([]job.ExternalJob, error)
}

type ChatRequest struct {
	Message  string
	Language string
	UserID   string
}

// JobCard is the transport-neutral job summary returned to the chat UI. It
// covers both external records (ExternalURL set) and internal postings
// (ID set).
type JobCard struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	PostedAt    string `json:"posted_at,omitempty"`
	Salary      string `json:"salary,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

type ChatReply struct {
	Message string
	Jobs    []JobCard
}

type ChatUsecase interface {
	Respond(ctx context.Context, req ChatRequest) ChatReply
}

type Chat struct {
	external   ExternalSearcher
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	logger     *log.Logger
}

func NewChatUsecase(external ExternalSearcher, jobs repository.JobRepository, candidates repository.CandidateRepository, logger *log.Logger) *Chat {
	return &Chat{external: external, jobs: jobs, candidates: candidates, logger: logger}
}

// Respond handles one chat message. It never returns an error: every failure
// either degrades to the next result tier or collapses into the localized
// generic-error reply.
func (u *Chat) Respond(ctx context.Context, req ChatRequest) (reply ChatReply) {
	msgs := chat.MessagesFor(req.Language)

	defer func() {
		if r := recover(); r != nil {
			if u.logger != nil {
				u.logger.Printf("[Chat] Panic recovered: %v", r)
			}
			reply = ChatReply{Message: msgs.GenericError}
		}
	}()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ChatReply{Message: msgs.Prompt}
	}

	if !chat.IsJobQuery(message) {
		return ChatReply{Message: msgs.Help}
	}

	intent := chat.ExtractIntent(message)
	prefs := u.loadPreferences(ctx, req.UserID)

	if external := u.searchExternal(ctx, intent); len(external) > 0 {
		return ChatReply{Message: msgs.FoundExternal, Jobs: externalCards(external)}
	}

	filter := repository.SearchFilter{
		Role:     firstNonEmpty(intent.Role, prefs.Category),
		Location: firstNonEmpty(intent.Location, prefs.Location),
		Limit:    chatResultLimit,
	}
	internal, err := u.jobs.SearchOpen(ctx, filter)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Chat] Internal search failed: %v", err)
		}
		return ChatReply{Message: msgs.GenericError}
	}
	if len(internal) > 0 {
		return ChatReply{Message: msgs.FoundInternal, Jobs: postingCards(internal)}
	}

	return ChatReply{Message: msgs.NothingFound}
}

// loadPreferences is best-effort: a missing user, a bad id or a lookup error
// all resolve to empty preferences.
func (u *Chat) loadPreferences(ctx context.Context, userID string) user.Preferences {
	userID = strings.TrimSpace(userID)
	if userID == "" || u.candidates == nil {
		return user.Preferences{}
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return user.Preferences{}
	}
	prefs, err := u.candidates.GetPreferences(ctx, id)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Chat] Preference lookup failed user_id=%s err=%v", userID, err)
		}
		return user.Preferences{}
	}
	return prefs
}

func (u *Chat) searchExternal(ctx context.Context, intent chat.Intent) []job.ExternalJob {
	if u.external == nil {
		return nil
	}
	jobs, err := u.external.Search(ctx, intent.Role, intent.Location, 1, chatResultLimit)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Chat] External fetch failed: %v", err)
		}
		return nil
	}
	return jobs
}

func externalCards(jobs []job.ExternalJob) []JobCard {
	cards := make([]JobCard, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, JobCard{
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			PostedAt:    j.PostedAt,
			ExternalURL: j.ExternalURL,
		})
	}
	return cards
}

func postingCards(postings []job.Posting) []JobCard {
	cards := make([]JobCard, 0, len(postings))
	for _, p := range postings {
		cards = append(cards, JobCard{
			ID:       p.ID.String(),
			Title:    p.Title,
			Company:  p.Company,
			Location: p.Location,
			PostedAt: p.CreatedAt.Format("02/01/2006"),
			Salary:   p.Salary,
			JobType:  p.JobType,
		})
	}
	return cards
}

func firstNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}
