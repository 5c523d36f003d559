package pgrkam

import (
	"strings"
	"testing"
)

const cardFixture = `
<html><body>
  <div class="job-card">
    <h3><a href="/job-seeker/job-detail/101">Data Entry Operator</a></h3>
    <span class="company">Punjab Infotech</span>
    <span class="location">Mohali</span>
    <span class="posted-date">2 days ago</span>
  </div>
  <div class="job-card">
    <span class="company">Ghost Employer</span>
    <span class="location">Nowhere</span>
  </div>
</body></html>`

func TestParseJobs_DropsIncompleteCards(t *testing.T) {
	jobs := ParseJobs(strings.NewReader(cardFixture), DefaultOrigin)
	if len(jobs) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(jobs))
	}

	got := jobs[0]
	if got.Title != "Data Entry Operator" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Company != "Punjab Infotech" {
		t.Fatalf("unexpected company %q", got.Company)
	}
	if got.Location != "Mohali" {
		t.Fatalf("unexpected location %q", got.Location)
	}
	if got.PostedAt != "2 days ago" {
		t.Fatalf("unexpected posted date %q", got.PostedAt)
	}
	if got.ExternalURL != DefaultOrigin+"/job-seeker/job-detail/101" {
		t.Fatalf("relative link not resolved: %q", got.ExternalURL)
	}
}

func TestParseJobs_AbsoluteLinkKept(t *testing.T) {
	html := `<div class="job-item"><h3><a href="https://example.org/jobs/7">Clerk</a></h3></div>`
	jobs := ParseJobs(strings.NewReader(html), DefaultOrigin)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(jobs))
	}
	if jobs[0].ExternalURL != "https://example.org/jobs/7" {
		t.Fatalf("absolute link rewritten: %q", jobs[0].ExternalURL)
	}
}

func TestParseJobs_TableFallback(t *testing.T) {
	html := `
<table>
  <tr><th>Title</th><th>Company</th><th>Location</th></tr>
  <tr>
    <td><a href="/job/55">Forklift Operator</a>Forklift Operator</td>
    <td>AgroWorks</td>
    <td>Ludhiana</td>
  </tr>
  <tr><td>No link here</td><td>X</td><td>Y</td></tr>
</table>`
	jobs := ParseJobs(strings.NewReader(html), DefaultOrigin)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 record from table fallback, got %d", len(jobs))
	}
	if jobs[0].Company != "AgroWorks" || jobs[0].Location != "Ludhiana" {
		t.Fatalf("unexpected record %+v", jobs[0])
	}
	if !strings.HasPrefix(jobs[0].ExternalURL, DefaultOrigin) {
		t.Fatalf("table link not resolved: %q", jobs[0].ExternalURL)
	}
}

func TestParseJobs_UnrecognizedMarkupIsEmptyNotError(t *testing.T) {
	for _, html := range []string{"", "<html><body><p>maintenance</p></body></html>", "not html at all"} {
		jobs := ParseJobs(strings.NewReader(html), DefaultOrigin)
		if len(jobs) != 0 {
			t.Fatalf("expected no records for %q, got %d", html, len(jobs))
		}
	}
}
