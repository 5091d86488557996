package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestEnrollIsIdempotent(t *testing.T) {
	app := newApp(t, nil)
	p := openPage(t, app, "/projects/lms")

	if got := text(p.doc, ".enrolled-count"); got != "2 Courses" {
		t.Fatalf("expected 2 seeded enrollments, got %q", got)
	}

	for i := 0; i < 2; i++ {
		resp := p.post(t, app, "/projects/lms/enroll", url.Values{"course_id": {"2"}})
		expectStatus(t, resp, http.StatusOK)
		doc := parse(t, resp)
		if got := text(doc, ".enrolled-count"); got != "3 Courses" {
			t.Fatalf("enroll #%d: expected 3 courses, got %q", i+1, got)
		}
	}

	// unknown ids leave the set alone
	resp := p.post(t, app, "/projects/lms/enroll", url.Values{"course_id": {"99"}})
	expectStatus(t, resp, http.StatusOK)
	if got := text(parse(t, resp), ".enrolled-count"); got != "3 Courses" {
		t.Fatalf("unknown course changed the set: %q", got)
	}
}

func TestLMSTabs(t *testing.T) {
	app := newApp(t, nil)
	p := openPage(t, app, "/projects/lms")

	if p.doc.Find("#my-courses .course").Length() != 2 {
		t.Fatal("my courses should list the seeded enrollments")
	}

	resp := p.post(t, app, "/projects/lms/tab", url.Values{"tab": {"browse"}})
	expectStatus(t, resp, http.StatusOK)
	doc := parse(t, resp)
	if n := doc.Find("#browse .course").Length(); n != 2 {
		t.Fatalf("browse should list the 2 other courses, got %d", n)
	}

	resp = p.post(t, app, "/projects/lms/enroll", url.Values{"course_id": {"4"}})
	doc = parse(t, resp)
	if n := doc.Find("#browse .course").Length(); n != 1 {
		t.Fatalf("enrolled course should leave browse, got %d", n)
	}
	if doc.Find(`#browse .course[data-course-id="4"]`).Length() != 0 {
		t.Fatal("course 4 still offered after enrolling")
	}

	// unknown tab keeps the current one
	resp = p.post(t, app, "/projects/lms/tab", url.Values{"tab": {"grades"}})
	if parse(t, resp).Find("#browse").Length() != 1 {
		t.Fatal("unknown tab should keep browse selected")
	}
}

func TestDashboardScheduleRequiresAllFields(t *testing.T) {
	app := newApp(t, nil)
	p := openPage(t, app, "/projects/dashboard")
	if n := p.doc.Find(".upcoming-post").Length(); n != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", n)
	}

	resp := p.post(t, app, "/projects/dashboard/posts", url.Values{
		"platform":       {"Twitter"},
		"content":        {"   "},
		"scheduled_time": {"Friday"},
	})
	expectStatus(t, resp, http.StatusOK)
	doc := parse(t, resp)
	if got := text(doc, ".notice-warning .notice-title"); got != "Missing information" {
		t.Fatalf("expected warning notice, got %q", got)
	}
	if got := text(doc, ".notice-warning .notice-message"); got != "Please fill in all fields" {
		t.Fatalf("unexpected notice message %q", got)
	}
	if n := doc.Find(".upcoming-post").Length(); n != 2 {
		t.Fatalf("rejected post must not be added, got %d posts", n)
	}
	// what the user typed is kept
	if v, _ := doc.Find(`input[name="scheduled_time"]`).Attr("value"); v != "Friday" {
		t.Fatalf("form buffer lost, got %q", v)
	}
}

func TestDashboardScheduleEditDelete(t *testing.T) {
	app := newApp(t, nil)
	p := openPage(t, app, "/projects/dashboard")

	resp := p.post(t, app, "/projects/dashboard/posts", url.Values{
		"platform":       {"Facebook"},
		"content":        {"Launch recap"},
		"scheduled_time": {"Monday at 10:00 AM"},
	})
	expectStatus(t, resp, http.StatusOK)
	doc := parse(t, resp)
	posts := doc.Find(".upcoming-post")
	if posts.Length() != 3 {
		t.Fatalf("expected 3 posts, got %d", posts.Length())
	}
	last := posts.Last()
	if got := strings.TrimSpace(last.Find(".content").Text()); got != "Launch recap" {
		t.Fatalf("new post should be last, got %q", got)
	}
	if !strings.Contains(last.Text(), "scheduled") {
		t.Fatal("new post should be scheduled")
	}
	newID, _ := last.Attr("data-post-id")

	// edit a seeded draft: status survives the edit
	resp = p.post(t, app, "/projects/dashboard/posts/edit", url.Values{"id": {"2"}})
	doc = parse(t, resp)
	if got := text(doc, ".post-form h3"); got != "Edit Post" {
		t.Fatalf("expected edit mode, got %q", got)
	}
	if got := text(doc, `textarea[name="content"]`); got != "Weekly tips for productivity and growth" {
		t.Fatalf("form not loaded from post, got %q", got)
	}
	resp = p.post(t, app, "/projects/dashboard/posts/commit", url.Values{
		"platform":       {"Twitter"},
		"content":        {"Weekly tips, revised"},
		"scheduled_time": {"Tomorrow at 9:00 AM"},
	})
	doc = parse(t, resp)
	edited := doc.Find(`.upcoming-post[data-post-id="2"]`)
	if got := strings.TrimSpace(edited.Find(".content").Text()); got != "Weekly tips, revised" {
		t.Fatalf("edit not applied, got %q", got)
	}
	if !strings.Contains(edited.Text(), "draft") {
		t.Fatal("edit should keep the draft status")
	}
	if got := text(doc, ".post-form h3"); got != "Schedule New Post" {
		t.Fatalf("edit mode should end, got %q", got)
	}

	resp = p.post(t, app, "/projects/dashboard/posts/delete", url.Values{"id": {newID}})
	doc = parse(t, resp)
	if doc.Find(`.upcoming-post[data-post-id="`+newID+`"]`).Length() != 0 {
		t.Fatal("deleted post still listed")
	}
	if n := doc.Find(".upcoming-post").Length(); n != 2 {
		t.Fatalf("expected 2 posts after delete, got %d", n)
	}
}

func TestDashboardPlatformStats(t *testing.T) {
	app := newApp(t, nil)
	p := openPage(t, app, "/projects/dashboard")
	if got := text(p.doc, "#stat-followers"); got != "45,672" {
		t.Fatalf("overview followers, got %q", got)
	}

	resp := p.post(t, app, "/projects/dashboard/platform", url.Values{"platform": {"instagram"}})
	expectStatus(t, resp, http.StatusOK)
	doc := parse(t, resp)
	if got, _ := doc.Find(".stats").Attr("data-platform"); got != "instagram" {
		t.Fatalf("platform not selected, got %q", got)
	}
	if got := text(doc, "#stat-followers"); got != "18,500" {
		t.Fatalf("instagram followers, got %q", got)
	}

	resp = p.post(t, app, "/projects/dashboard/platform", url.Values{"platform": {"myspace"}})
	expectStatus(t, resp, http.StatusBadRequest)
}
