// Package composer turns a resume record and a theme into a self-contained
// HTML document. Composition is pure: same input, byte-identical output.
package composer

import (
	"html"
	"net/url"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/template"

	"golang.org/x/net/publicsuffix"
)

// Compose builds the complete HTML5 document for the given resume and theme.
// User content is HTML-escaped at this boundary; the only markup injected
// into user text is the <br> produced by newline conversion.
func Compose(doc domain.ResumeDocument, kind template.Kind) string {
	styles := template.StylesFor(kind)

	var b strings.Builder
	b.Grow(8 << 10)

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(esc(displayName(doc)))
	b.WriteString("</title>\n<style>")
	b.WriteString(styles.Base)
	b.WriteString(styles.Override)
	b.WriteString("</style>\n</head>\n<body>\n")

	if kind.Layout() == template.LayoutSidebar {
		writeSidebarLayout(&b, doc)
	} else {
		writeLinearLayout(&b, doc)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeLinearLayout(b *strings.Builder, doc domain.ResumeDocument) {
	b.WriteString("<div class=\"resume\">\n")
	writeHeader(b, doc, true)
	writeObjective(b, doc)
	writeExperience(b, doc)
	writeSkills(b, doc)
	writeEducation(b, doc)
	writeCertifications(b, doc)
	writeLanguages(b, doc)
	writeAdditional(b, doc)
	b.WriteString("</div>\n")
}

// writeSidebarLayout physically moves contact, skills and languages into the
// left column. This is a structural branch, not a recoloring.
func writeSidebarLayout(b *strings.Builder, doc domain.ResumeDocument) {
	b.WriteString("<div class=\"resume\">\n<aside class=\"sidebar\">\n")
	if img := strings.TrimSpace(doc.PersonalInfo.ProfileImage); img != "" {
		b.WriteString("<img class=\"photo\" src=\"" + escAttr(img) + "\" alt=\"profile\">\n")
	}
	b.WriteString("<div class=\"name\">" + esc(displayName(doc)) + "</div>\n")
	writeContactBlock(b, doc.PersonalInfo)
	writeSkills(b, doc)
	writeLanguages(b, doc)
	b.WriteString("</aside>\n<div class=\"main\">\n")
	writeObjective(b, doc)
	writeExperience(b, doc)
	writeEducation(b, doc)
	writeCertifications(b, doc)
	writeAdditional(b, doc)
	b.WriteString("</div>\n</div>\n")
}

func writeHeader(b *strings.Builder, doc domain.ResumeDocument, withPhoto bool) {
	p := doc.PersonalInfo
	b.WriteString("<header class=\"header\">\n")
	if withPhoto {
		if img := strings.TrimSpace(p.ProfileImage); img != "" {
			b.WriteString("<img class=\"photo\" src=\"" + escAttr(img) + "\" alt=\"profile\">\n")
		}
	}
	b.WriteString("<div class=\"name\">" + esc(displayName(doc)) + "</div>\n")

	var contact []string
	for _, v := range []string{p.Email, p.Phone, p.Address} {
		if s := strings.TrimSpace(v); s != "" {
			contact = append(contact, "<span>"+esc(s)+"</span>")
		}
	}
	if len(contact) > 0 {
		b.WriteString("<div class=\"contact\">" + strings.Join(contact, "") + "</div>\n")
	}
	writeLinks(b, p.Links)
	b.WriteString("</header>\n")
}

func writeContactBlock(b *strings.Builder, p domain.PersonalInfo) {
	var rows []string
	for _, v := range []string{p.Email, p.Phone, p.Address} {
		if s := strings.TrimSpace(v); s != "" {
			rows = append(rows, "<div>"+esc(s)+"</div>")
		}
	}
	if len(rows) == 0 && len(p.Links) == 0 {
		return
	}
	b.WriteString("<section class=\"section contactblock\">\n<h2>Contact</h2>\n")
	if len(rows) > 0 {
		b.WriteString("<div class=\"contact\">" + strings.Join(rows, "") + "</div>\n")
	}
	writeLinks(b, p.Links)
	b.WriteString("</section>\n")
}

func writeLinks(b *strings.Builder, links []domain.Link) {
	var out []string
	for _, l := range links {
		u := strings.TrimSpace(l.URL)
		if u == "" {
			continue
		}
		out = append(out, "<a href=\""+escAttr(u)+"\">"+esc(linkLabel(l))+"</a>")
	}
	if len(out) == 0 {
		return
	}
	b.WriteString("<div class=\"links\">" + strings.Join(out, "") + "</div>\n")
}

func writeObjective(b *strings.Builder, doc domain.ResumeDocument) {
	if strings.TrimSpace(doc.CareerObjective) == "" {
		return
	}
	b.WriteString("<section class=\"section\">\n<h2>Career Objective</h2>\n<p>")
	b.WriteString(multiline(doc.CareerObjective))
	b.WriteString("</p>\n</section>\n")
}

func writeExperience(b *strings.Builder, doc domain.ResumeDocument) {
	entries := FilterExperience(doc.WorkExperience)
	if len(entries) == 0 {
		return
	}
	b.WriteString("<section class=\"section\">\n<h2>Work Experience</h2>\n")
	for _, e := range entries {
		b.WriteString("<div class=\"entry\">\n<div><span class=\"title\">" + esc(e.JobTitle) + "</span>")
		if org := strings.TrimSpace(e.Organization); org != "" {
			b.WriteString(" <span class=\"where\">&mdash; " + esc(org) + "</span>")
		}
		b.WriteString("</div>\n")
		if when := period(e.StartDate, e.EndDate, e.IsCurrent); when != "" {
			b.WriteString("<div class=\"when\">" + esc(when) + "</div>\n")
		}
		if strings.TrimSpace(e.Responsibilities) != "" {
			b.WriteString("<div class=\"body\">" + multiline(e.Responsibilities) + "</div>\n")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</section>\n")
}

func writeSkills(b *strings.Builder, doc domain.ResumeDocument) {
	var items []string
	for _, s := range doc.Skills {
		if t := strings.TrimSpace(s); t != "" {
			items = append(items, "<li>"+esc(t)+"</li>")
		}
	}
	if len(items) == 0 {
		return
	}
	b.WriteString("<section class=\"section skills\">\n<h2>Skills</h2>\n<ul>")
	b.WriteString(strings.Join(items, ""))
	b.WriteString("</ul>\n</section>\n")
}

func writeEducation(b *strings.Builder, doc domain.ResumeDocument) {
	entries := FilterEducation(doc.Education)
	if len(entries) == 0 {
		return
	}
	b.WriteString("<section class=\"section\">\n<h2>Education</h2>\n")
	for _, e := range entries {
		b.WriteString("<div class=\"entry\">\n<div><span class=\"title\">" + esc(e.Degree) + "</span>")
		if in := strings.TrimSpace(e.Institution); in != "" {
			b.WriteString(" <span class=\"where\">&mdash; " + esc(in) + "</span>")
		}
		b.WriteString("</div>\n")
		if when := period(e.StartYear, e.EndYear, false); when != "" {
			b.WriteString("<div class=\"when\">" + esc(when) + "</div>\n")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</section>\n")
}

func writeCertifications(b *strings.Builder, doc domain.ResumeDocument) {
	var entries []domain.Certification
	for _, c := range doc.Certifications {
		if strings.TrimSpace(c.Name) != "" {
			entries = append(entries, c)
		}
	}
	if len(entries) == 0 {
		return
	}
	b.WriteString("<section class=\"section\">\n<h2>Certifications</h2>\n")
	for _, c := range entries {
		b.WriteString("<div class=\"entry\"><span class=\"title\">" + esc(c.Name) + "</span>")
		if is := strings.TrimSpace(c.Issuer); is != "" {
			b.WriteString(" <span class=\"where\">&mdash; " + esc(is) + "</span>")
		}
		if y := strings.TrimSpace(c.Year); y != "" {
			b.WriteString(" <span class=\"when\">(" + esc(y) + ")</span>")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</section>\n")
}

func writeLanguages(b *strings.Builder, doc domain.ResumeDocument) {
	var items []string
	for _, l := range doc.Languages {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		item := esc(name)
		if p := strings.TrimSpace(l.Proficiency); p != "" {
			item += " <span class=\"when\">(" + esc(p) + ")</span>"
		}
		items = append(items, "<li>"+item+"</li>")
	}
	if len(items) == 0 {
		return
	}
	b.WriteString("<section class=\"section langs\">\n<h2>Languages</h2>\n<ul>")
	b.WriteString(strings.Join(items, ""))
	b.WriteString("</ul>\n</section>\n")
}

func writeAdditional(b *strings.Builder, doc domain.ResumeDocument) {
	type sub struct{ title, text string }
	subs := []sub{
		{"Volunteer Experience", doc.AdditionalInfo.VolunteerExperience},
		{"Projects", doc.AdditionalInfo.Projects},
		{"Awards & Interests", doc.AdditionalInfo.Awards},
	}
	var present []sub
	for _, s := range subs {
		if strings.TrimSpace(s.text) != "" {
			present = append(present, s)
		}
	}
	if len(present) == 0 {
		return
	}
	b.WriteString("<section class=\"section\">\n<h2>Additional Information</h2>\n")
	for _, s := range present {
		b.WriteString("<div class=\"sub\">\n<h3>" + esc(s.title) + "</h3>\n<div class=\"body\">")
		b.WriteString(multiline(s.text))
		b.WriteString("</div>\n</div>\n")
	}
	b.WriteString("</section>\n")
}

// FilterExperience drops entries without a job title, keeping the order of
// the survivors.
func FilterExperience(in []domain.WorkExperience) []domain.WorkExperience {
	var out []domain.WorkExperience
	for _, e := range in {
		if strings.TrimSpace(e.JobTitle) != "" {
			out = append(out, e)
		}
	}
	return out
}

// FilterEducation drops entries without a degree, keeping order.
func FilterEducation(in []domain.Education) []domain.Education {
	var out []domain.Education
	for _, e := range in {
		if strings.TrimSpace(e.Degree) != "" {
			out = append(out, e)
		}
	}
	return out
}

func displayName(doc domain.ResumeDocument) string {
	if n := strings.TrimSpace(doc.PersonalInfo.FullName); n != "" {
		return n
	}
	return "Resume"
}

func period(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if current {
		end = "Present"
	}
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	case end != "":
		return end
	}
	return ""
}

// linkLabel picks a display label for a header link: the user's label when
// given, otherwise the eTLD+1 of the URL's host, otherwise the raw URL.
func linkLabel(l domain.Link) string {
	if lb := strings.TrimSpace(l.Label); lb != "" {
		return lb
	}
	candidate := strings.TrimSpace(l.URL)
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return l.URL
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

func esc(s string) string { return html.EscapeString(s) }

// escAttr escapes a value placed inside a double-quoted attribute.
func escAttr(s string) string { return html.EscapeString(s) }

// multiline escapes user text, then converts embedded newlines to <br> so
// the inserted tags survive escaping.
func multiline(s string) string {
	escaped := html.EscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
