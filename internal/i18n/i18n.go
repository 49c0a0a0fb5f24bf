// Package i18n holds the static locale tables for the wizard UI.
package i18n

import "strings"

// Locale selects one of the shipped string tables.
type Locale string

const (
	Italian Locale = "it"
	English Locale = "en"
)

// Table resolves UI strings for the active locale.
type Table struct {
	locale Locale
}

// New returns a table for the given locale, defaulting to Italian for
// anything unrecognized.
func New(locale string) *Table {
	switch Locale(locale) {
	case English:
		return &Table{locale: English}
	default:
		return &Table{locale: Italian}
	}
}

// Locale returns the active locale.
func (t *Table) Locale() Locale { return t.locale }

// Toggle switches between the two shipped locales.
func (t *Table) Toggle() {
	if t.locale == Italian {
		t.locale = English
	} else {
		t.locale = Italian
	}
}

// T looks up a key in the active table. Missing keys fall back to the
// other locale, then to the key itself.
func (t *Table) T(key string) string {
	if s, ok := tables[t.locale][key]; ok {
		return s
	}
	other := Italian
	if t.locale == Italian {
		other = English
	}
	if s, ok := tables[other][key]; ok {
		return s
	}
	return key
}

// Tf looks up a key and substitutes {name} placeholders from pairs of
// name, value arguments.
func (t *Table) Tf(key string, args ...string) string {
	s := t.T(key)
	for i := 0; i+1 < len(args); i += 2 {
		s = strings.ReplaceAll(s, "{"+args[i]+"}", args[i+1])
	}
	return s
}

// Day returns the localized full day name for a day code (mon..sun).
func (t *Table) Day(code string) string {
	if s, ok := tables[t.locale]["day."+code]; ok {
		return s
	}
	return code
}

var tables = map[Locale]map[string]string{
	Italian: {
		"app.subtitle": "Instagram Content Generator",
		"step.of":      "Step {n} di 4",

		"step.brand":    "Brand",
		"step.campaign": "Campagna",
		"step.media":    "Media",
		"step.output":   "Output",

		"brand.title":         "Configura il tuo Brand",
		"brand.name":          "Nome Brand",
		"brand.description":   "Descrizione",
		"brand.tagline":       "Tagline",
		"brand.history":       "Storia",
		"brand.required":      "Hashtag Obbligatori",
		"brand.base":          "Hashtag Aggiuntivi",
		"brand.nohashtags":    "Nessun hashtag",
		"brand.requiredhint":  "Sempre inclusi in ogni post",
		"brand.basehint":      "Hashtag base del brand (opzionale)",

		"campaign.title":        "Definisci la Campagna",
		"campaign.goal":         "Goal",
		"campaign.theme":        "Theme",
		"campaign.category":     "Featured Category",
		"campaign.nposts":       "Numero Post",
		"campaign.ctamode":      "CTA Mode",
		"campaign.voice":        "Voice",
		"campaign.availability": "Availability",
		"campaign.withcta":      "Include CTA domenicale",
		"campaign.nocta":        "Senza CTA finale",
		"campaign.calendar":     "Anteprima Calendario",

		"media.title":      "Carica le Immagini",
		"media.need":       "Servono almeno {n} immagini con prefisso template",
		"media.prompt":     "Percorso o glob (es. foto/oggetto_*.jpg)",
		"media.uploaded":   "Caricate",
		"media.ready":      "Pronto per generare",
		"media.generating": "Generazione in corso",

		"output.title":    "I tuoi Contenuti",
		"output.ready":    "{n} post pronti per {brand}",
		"output.brief":    "Week Brief",
		"output.keywords": "Keywords",
		"output.copy":     "Copia Caption",
		"output.copied":   "Copiato!",
		"output.newrun":   "Nuova Campagna",
		"output.export":   "Esporta JSON",
		"output.exported": "Salvato: {file}",

		"nav.back":     "Indietro",
		"nav.continue": "Continua",
		"nav.generate": "Genera Contenuti",

		"day.mon": "Lunedì",
		"day.tue": "Martedì",
		"day.wed": "Mercoledì",
		"day.thu": "Giovedì",
		"day.fri": "Venerdì",
		"day.sat": "Sabato",
		"day.sun": "Domenica",
	},
	English: {
		"app.subtitle": "Instagram Content Generator",
		"step.of":      "Step {n} of 4",

		"step.brand":    "Brand",
		"step.campaign": "Campaign",
		"step.media":    "Media",
		"step.output":   "Output",

		"brand.title":         "Configure your Brand",
		"brand.name":          "Brand Name",
		"brand.description":   "Description",
		"brand.tagline":       "Tagline",
		"brand.history":       "History",
		"brand.required":      "Required Hashtags",
		"brand.base":          "Additional Hashtags",
		"brand.nohashtags":    "No hashtags",
		"brand.requiredhint":  "Always included in every post",
		"brand.basehint":      "Brand base hashtags (optional)",

		"campaign.title":        "Define your Campaign",
		"campaign.goal":         "Goal",
		"campaign.theme":        "Theme",
		"campaign.category":     "Featured Category",
		"campaign.nposts":       "Number of Posts",
		"campaign.ctamode":      "CTA Mode",
		"campaign.voice":        "Voice",
		"campaign.availability": "Availability",
		"campaign.withcta":      "Includes Sunday CTA",
		"campaign.nocta":        "Without final CTA",
		"campaign.calendar":     "Calendar Preview",

		"media.title":      "Upload your Images",
		"media.need":       "You need at least {n} images with a template prefix",
		"media.prompt":     "Path or glob (e.g. photos/oggetto_*.jpg)",
		"media.uploaded":   "Uploaded",
		"media.ready":      "Ready to generate",
		"media.generating": "Generating",

		"output.title":    "Your Content",
		"output.ready":    "{n} posts ready for {brand}",
		"output.brief":    "Week Brief",
		"output.keywords": "Keywords",
		"output.copy":     "Copy Caption",
		"output.copied":   "Copied!",
		"output.newrun":   "New Campaign",
		"output.export":   "Export JSON",
		"output.exported": "Saved: {file}",

		"nav.back":     "Back",
		"nav.continue": "Continue",
		"nav.generate": "Generate Content",

		"day.mon": "Monday",
		"day.tue": "Tuesday",
		"day.wed": "Wednesday",
		"day.thu": "Thursday",
		"day.fri": "Friday",
		"day.sat": "Saturday",
		"day.sun": "Sunday",
	},
}
