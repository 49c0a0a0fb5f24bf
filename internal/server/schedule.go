package server

import "github.com/copyforge/copyforge/internal/api"

// The weekly posting cycle: object/value posts anchor Monday, Wednesday
// and Friday, detail and process posts fill the gaps. A seventh post is
// always the Sunday call-to-action story.
var baseCycle = []api.ScheduleSlot{
	{DayCode: "mon", TemplateID: "T1_OGGETTO", PostRole: "value"},
	{DayCode: "tue", TemplateID: "T2_DETTAGLIO", PostRole: "material"},
	{DayCode: "wed", TemplateID: "T1_OGGETTO", PostRole: "value"},
	{DayCode: "thu", TemplateID: "T3_PROCESSO", PostRole: "process"},
	{DayCode: "fri", TemplateID: "T1_OGGETTO", PostRole: "value"},
	{DayCode: "sat", TemplateID: "T2_DETTAGLIO", PostRole: "material"},
}

var ctaSlot = api.ScheduleSlot{
	DayCode:    "sun",
	TemplateID: "T4_STORIA",
	PostRole:   "cta",
	CTAEnabled: true,
}

var dayNames = map[string]string{
	"mon": "Lunedì", "tue": "Martedì", "wed": "Mercoledì",
	"thu": "Giovedì", "fri": "Venerdì", "sat": "Sabato", "sun": "Domenica",
}

// BuildSchedule derives the calendar for nPosts posts. Weeks of seven end
// with the CTA slot; shorter weeks truncate the base cycle.
func BuildSchedule(nPosts int) []api.ScheduleSlot {
	if nPosts < 1 {
		return nil
	}
	var out []api.ScheduleSlot
	i := 0
	limit := nPosts
	if limit > 6 {
		limit = 6
	}
	for len(out) < limit {
		out = append(out, baseCycle[i%len(baseCycle)])
		i++
	}
	if nPosts >= 7 {
		for len(out) < nPosts-1 {
			out = append(out, baseCycle[i%len(baseCycle)])
			i++
		}
		out = append(out, ctaSlot)
	}
	for idx := range out {
		out[idx].Index = idx
		out[idx].DayName = dayNames[out[idx].DayCode]
	}
	return out
}
