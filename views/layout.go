package views

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AlertEvent is the HX-Trigger event a response raises to show a blocking alert
const AlertEvent = "portfolio:alert"

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

const motionCSS = `
[data-motion]{opacity:0;transition:opacity .6s ease,transform .6s ease}
[data-motion="fade-up"]{transform:translateY(24px)}
[data-motion="fade-left"]{transform:translateX(-24px)}
[data-motion="fade-right"]{transform:translateX(24px)}
[data-motion="scale"]{transform:scale(.9)}
[data-motion].is-visible{opacity:1;transform:none}
`

// motionScript reveals data-motion elements once, including ones swapped in by
// htmx after the first paint.
const motionScript = `
(function () {
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (!entry.isIntersecting) return;
      var el = entry.target;
      el.style.transitionDelay = (el.dataset.motionDelay || "0") + "s";
      el.classList.add("is-visible");
      observer.unobserve(el);
    });
  }, { threshold: 0.1 });
  function scan(root) {
    root.querySelectorAll("[data-motion]:not(.is-visible)").forEach(function (el) {
      observer.observe(el);
    });
  }
  document.addEventListener("DOMContentLoaded", function () { scan(document); });
  document.body.addEventListener("htmx:afterSettle", function (evt) { scan(evt.detail.elt.parentNode || document); });
})();
`

func alertScript() string {
	return `document.body.addEventListener(` + strconv.Quote(AlertEvent) + `, function (evt) { window.alert(evt.detail.value); });`
}

// failureScript covers requests that never reach a section. A contact submit
// that fails alerts unless the response already raised an alert. Any other
// fragment that finds its page gone reloads into a fresh one.
func failureScript() string {
	return `
(function () {
  function fromContact(evt) {
    var elt = evt.detail.elt;
    return !!(elt && elt.closest && elt.closest("#contact"));
  }
  document.body.addEventListener("htmx:responseError", function (evt) {
    var xhr = evt.detail.xhr;
    if (fromContact(evt)) {
      if (!xhr || !xhr.getResponseHeader("HX-Trigger")) window.alert(` + strconv.Quote(sections.AlertSubmissionError) + `);
      return;
    }
    if (xhr && xhr.status === 404) window.location.reload();
  });
  document.body.addEventListener("htmx:sendError", function (evt) {
    if (fromContact(evt)) window.alert(` + strconv.Quote(sections.AlertSubmissionError) + `);
  });
})();
`
}

// unmountScript tells the server the page is gone so it can stop the
// section timers right away instead of waiting for the idle sweep. A page
// kept in the back-forward cache stays mounted until it is shown again, and
// then reloads since the server may have swept it meanwhile.
func unmountScript(pageID uuid.UUID) string {
	return `window.addEventListener("pagehide", function (evt) { if (!evt.persisted) navigator.sendBeacon(` +
		strconv.Quote(PagePath(pageID, "unmount")) + `); });
window.addEventListener("pageshow", function (evt) { if (evt.persisted) window.location.reload(); });`
}

// Layout is the HTML document around a page's sections
func Layout(title string, pageID uuid.UUID, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(htmxSrc)),
				h.StyleEl(g.Raw(motionCSS)),
			),
			h.Body(
				h.Class("bg-slate-950 text-slate-100 antialiased scroll-smooth"),
				g.Group(body),
				h.Script(g.Raw(motionScript)),
				h.Script(g.Raw(alertScript())),
				h.Script(g.Raw(failureScript())),
				h.Script(g.Raw(unmountScript(pageID))),
			),
		),
	)
}
