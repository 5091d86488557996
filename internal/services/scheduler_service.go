package services

import (
	"errors"
	"slices"
	"strings"

	"portfolio/internal/domain"
)

var (
	ErrMissingFields   = errors.New("please fill in platform, content and time")
	ErrUnknownPost     = errors.New("post not found")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// PostForm is the shared form buffer used by both scheduling and editing.
type PostForm struct {
	Platform      string `json:"platform"`
	Content       string `json:"content"`
	ScheduledTime string `json:"scheduled_time"`
}

func (f PostForm) complete() bool {
	return strings.TrimSpace(f.Platform) != "" &&
		strings.TrimSpace(f.Content) != "" &&
		strings.TrimSpace(f.ScheduledTime) != ""
}

type DashboardState struct {
	Platform  string                 `json:"platform"`
	Posts     []domain.ScheduledPost `json:"posts"`
	Form      PostForm               `json:"form"`
	EditingID string                 `json:"editing_id,omitempty"`
}

// Scheduler applies dashboard events to a DashboardState. Every method
// returns the next state; on error the returned state equals the input.
type Scheduler struct {
	IDs *IDGenerator
}

func NewScheduler(ids *IDGenerator) *Scheduler { return &Scheduler{IDs: ids} }

func (s *Scheduler) Initial(seed []domain.ScheduledPost) DashboardState {
	return DashboardState{Platform: domain.PlatformOverview, Posts: slices.Clone(seed)}
}

func (s *Scheduler) SelectPlatform(st DashboardState, platform string) (DashboardState, error) {
	if !slices.Contains(domain.Platforms, platform) {
		return st, ErrUnknownPlatform
	}
	st.Platform = platform
	return st, nil
}

// Schedule appends a new post with status "scheduled". All three form
// fields are required; nothing is created otherwise.
func (s *Scheduler) Schedule(st DashboardState, f PostForm) (DashboardState, error) {
	if !f.complete() {
		return st, ErrMissingFields
	}
	post := domain.ScheduledPost{
		ID:            s.IDs.New(),
		Platform:      strings.TrimSpace(f.Platform),
		Content:       strings.TrimSpace(f.Content),
		ScheduledTime: strings.TrimSpace(f.ScheduledTime),
		Status:        domain.StatusScheduled,
	}
	st.Posts = append(slices.Clone(st.Posts), post)
	st.Form = PostForm{}
	st.EditingID = ""
	return st, nil
}

// BeginEdit loads a post into the form buffer.
func (s *Scheduler) BeginEdit(st DashboardState, id string) (DashboardState, error) {
	i := slices.IndexFunc(st.Posts, func(p domain.ScheduledPost) bool { return p.ID == id })
	if i < 0 {
		return st, ErrUnknownPost
	}
	p := st.Posts[i]
	st.Form = PostForm{Platform: p.Platform, Content: p.Content, ScheduledTime: p.ScheduledTime}
	st.EditingID = id
	return st, nil
}

// CommitEdit replaces the fields of the post being edited, or aborts under
// the same validation rule as Schedule. Status is left as it was.
func (s *Scheduler) CommitEdit(st DashboardState, f PostForm) (DashboardState, error) {
	i := slices.IndexFunc(st.Posts, func(p domain.ScheduledPost) bool { return p.ID == st.EditingID })
	if st.EditingID == "" || i < 0 {
		return st, ErrUnknownPost
	}
	if !f.complete() {
		return st, ErrMissingFields
	}
	posts := slices.Clone(st.Posts)
	posts[i].Platform = strings.TrimSpace(f.Platform)
	posts[i].Content = strings.TrimSpace(f.Content)
	posts[i].ScheduledTime = strings.TrimSpace(f.ScheduledTime)
	st.Posts = posts
	st.Form = PostForm{}
	st.EditingID = ""
	return st, nil
}

func (s *Scheduler) CancelEdit(st DashboardState) DashboardState {
	st.Form = PostForm{}
	st.EditingID = ""
	return st
}

// Delete removes a post by id; unknown ids are a no-op.
func (s *Scheduler) Delete(st DashboardState, id string) DashboardState {
	st.Posts = slices.DeleteFunc(slices.Clone(st.Posts), func(p domain.ScheduledPost) bool { return p.ID == id })
	if st.EditingID == id {
		st.Form = PostForm{}
		st.EditingID = ""
	}
	return st
}
