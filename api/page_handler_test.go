package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pageIDPattern = regexp.MustCompile(`/page/([0-9a-f-]{36})/`)

type siteFixture struct {
	pages    http.Handler
	registry *sections.Registry
}

// newSite wires a page router to a real content API over HTTP
func newSite(t *testing.T) siteFixture {
	t.Helper()
	contentAPI := httptest.NewServer(newContentRouter(newTestStore(t), nil))
	t.Cleanup(contentAPI.Close)

	client := services.NewPortfolioClient(contentAPI.URL)
	registry := sections.NewRegistry(context.Background(), func() *sections.Page {
		return sections.NewPage(client, sections.WithSiteName("Alex Rivera"), sections.WithRoleInterval(time.Hour))
	})
	t.Cleanup(registry.Close)

	pages := newPageRouter(registry, views.Options{Title: "Alex Rivera", RoleInterval: time.Hour, KeepAlive: 30 * time.Second}, 5*time.Second)
	return siteFixture{pages: pages, registry: registry}
}

func (s siteFixture) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.pages.ServeHTTP(rec, req)
	return rec
}

func (s siteFixture) openPage(t *testing.T) (string, string) {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	match := pageIDPattern.FindStringSubmatch(body)
	require.Len(t, match, 2)
	return match[1], body
}

func TestPageServer_IndexRendersSettledSections(t *testing.T) {
	site := newSite(t)
	_, body := site.openPage(t)

	assert.Equal(t, 1, site.registry.Len())
	assert.Contains(t, body, "<title>Alex Rivera</title>")
	assert.Contains(t, body, `id="home"`)
	assert.Contains(t, body, `id="work"`)
	assert.Contains(t, body, "Full Stack Developer")
	assert.Contains(t, body, "Read More")
	assert.Contains(t, body, "Northwind Labs")
	assert.NotContains(t, body, views.LoadingText)
}

func TestPageServer_Fragments(t *testing.T) {
	site := newSite(t)
	pageID, _ := site.openPage(t)
	base := "/page/" + pageID

	rec := site.do(t, http.MethodPost, base+"/hero/bio", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Read Less")

	rec = site.do(t, http.MethodPost, base+"/about/bio", nil)
	assert.Contains(t, rec.Body.String(), "Read Less")

	rec = site.do(t, http.MethodGet, base+"/hero/role", nil)
	assert.Contains(t, rec.Body.String(), "Full Stack Developer")

	rec = site.do(t, http.MethodPost, base+"/header/menu", nil)
	assert.Contains(t, rec.Body.String(), "?action=close")
	rec = site.do(t, http.MethodPost, base+"/header/menu?action=close", nil)
	assert.NotContains(t, rec.Body.String(), "?action=close")

	rec = site.do(t, http.MethodGet, base+"/sections/skills", nil)
	assert.Contains(t, rec.Body.String(), `id="skills"`)

	rec = site.do(t, http.MethodGet, base+"/sections/blog", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageServer_Contact(t *testing.T) {
	site := newSite(t)
	pageID, _ := site.openPage(t)
	target := "/page/" + pageID + "/contact"

	rec := site.do(t, http.MethodPost, target, url.Values{
		"name": {"Ada"}, "email": {"not-an-email"}, "message": {"Hello"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"portfolio:alert": "Invalid email"}`, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), `value="not-an-email"`)
	assert.NotContains(t, rec.Body.String(), sections.MessageSent)

	rec = site.do(t, http.MethodPost, target, url.Values{
		"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"},
	})
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), sections.MessageSent)
	assert.NotContains(t, rec.Body.String(), `value="Ada"`)
}

func TestPageServer_Unmount(t *testing.T) {
	site := newSite(t)
	pageID, _ := site.openPage(t)

	rec := site.do(t, http.MethodPost, "/page/"+pageID+"/unmount", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, site.registry.Len())

	rec = site.do(t, http.MethodGet, "/page/"+pageID+"/hero/role", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageServer_ContactAfterPageRemoved(t *testing.T) {
	site := newSite(t)
	pageID, _ := site.openPage(t)

	rec := site.do(t, http.MethodPost, "/page/"+pageID+"/unmount", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = site.do(t, http.MethodPost, "/page/"+pageID+"/contact", url.Values{
		"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"portfolio:alert": "`+sections.AlertSubmissionError+`"}`, rec.Header().Get("HX-Trigger"))

	// other fragments of a removed page raise no alert
	rec = site.do(t, http.MethodPost, "/page/"+pageID+"/hero/bio", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
}

func TestPageServer_KeepAlive(t *testing.T) {
	site := newSite(t)
	pageID, body := site.openPage(t)
	assert.Contains(t, body, `hx-post="/page/`+pageID+`/keepalive"`)
	assert.Contains(t, body, `hx-trigger="every 30000ms"`)

	rec := site.do(t, http.MethodPost, "/page/"+pageID+"/keepalive", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, site.registry.Len())

	site.do(t, http.MethodPost, "/page/"+pageID+"/unmount", nil)
	rec = site.do(t, http.MethodPost, "/page/"+pageID+"/keepalive", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageServer_PrefetchDoesNotMount(t *testing.T) {
	site := newSite(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-Purpose", "prefetch;prerender")
	rec := httptest.NewRecorder()
	site.pages.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, 0, site.registry.Len())

	site.openPage(t)
	assert.Equal(t, 1, site.registry.Len())
}

func TestPageServer_BadPageIDs(t *testing.T) {
	site := newSite(t)

	rec := site.do(t, http.MethodGet, "/page/not-a-uuid/sections/hero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = site.do(t, http.MethodGet, "/page/"+uuid.NewString()+"/sections/hero", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageServer_Health(t *testing.T) {
	site := newSite(t)
	rec := site.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"page"`)
}
