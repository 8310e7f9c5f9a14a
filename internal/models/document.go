package models

// Document is the full per-user persisted aggregate. After normalization all
// six collections are present; the five list collections are never nil.
type Document struct {
	Klausuren       []Exam           `json:"klausuren"`
	Todos           []Todo           `json:"todos"`
	Seminare        []Seminar        `json:"seminare"`
	Lernplan        []StudyPlanEntry `json:"lernplan"`
	Mood            []MoodEntry      `json:"mood"`
	StundenplanHTML string           `json:"stundenplan_html"`
}

// NewDocument returns the empty default document.
func NewDocument() *Document {
	return &Document{
		Klausuren: []Exam{},
		Todos:     []Todo{},
		Seminare:  []Seminar{},
		Lernplan:  []StudyPlanEntry{},
		Mood:      []MoodEntry{},
	}
}

// Exam is a single exam record. Archived exams are read-only except for the
// final grade; archiving is one-way.
type Exam struct {
	Fach           string  `json:"fach"`
	Datum          Date    `json:"datum"`
	Lernordner     string  `json:"lernordner"`
	TageVorher     int     `json:"tage_vorher"`
	Archiviert     bool    `json:"archiviert"`
	Note           string  `json:"note"`
	ZielStunden    float64 `json:"ziel_stunden"`
	GelerntStunden float64 `json:"gelernt_stunden"`
}

// Todo has no identity beyond its list position.
type Todo struct {
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Fach    string `json:"fach"`
	Wichtig bool   `json:"wichtig"`
	Faellig Date   `json:"faellig"`
}

// Seminar carries up to two date/time slots; the second slot is optional.
type Seminar struct {
	Titel      string  `json:"titel"`
	Datum      Date    `json:"datum"`
	Uhrzeit1   string  `json:"uhrzeit1"`
	Datum2     Date    `json:"datum2"`
	Uhrzeit2   string  `json:"uhrzeit2"`
	Notiz      string  `json:"notiz"`
	Punkte     float64 `json:"punkte"`
	Absolviert bool    `json:"absolviert"`
}

// StudyPlanEntry plans weekly hours per subject. Priority is 1 (highest) to 3.
type StudyPlanEntry struct {
	Fach            string  `json:"fach"`
	StundenProWoche float64 `json:"stunden_pro_woche"`
	Prioritaet      int     `json:"priorität"`
}

// MoodEntry is one row of the append-only mood log.
type MoodEntry struct {
	Datum    Date    `json:"datum"`
	Stimmung int     `json:"stimmung"`
	Stress   int     `json:"stress"`
	Schlaf   float64 `json:"schlaf"`
	Notiz    string  `json:"notiz"`
}
