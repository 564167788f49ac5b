package dateutil

import (
	"golang.org/x/text/language"
)

// Locale holds the translated names used by FormatDate and TimeSince.
type Locale struct {
	Tag         language.Tag
	Months      [12]string
	MonthsShort [12]string
	Days        [7]string // Sunday first, indexed by time.Weekday
	DaysShort   [7]string
	Units       [6]unitNames // year, month, week, day, hour, minute
	// Plural reports whether n takes the plural form.
	Plural func(n int) bool
}

type unitNames struct {
	one   string
	other string
}

func pluralNotOne(n int) bool { return n != 1 }
func pluralAboveOne(n int) bool { return n > 1 }

var english = &Locale{
	Tag:         language.English,
	Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Days:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DaysShort:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Units: [6]unitNames{
		{"year", "years"}, {"month", "months"}, {"week", "weeks"},
		{"day", "days"}, {"hour", "hours"}, {"minute", "minutes"},
	},
	Plural: pluralNotOne,
}

var locales = []*Locale{
	english,
	{
		Tag:         language.French,
		Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsShort: [12]string{"jan", "fév", "mar", "avr", "mai", "jui", "jul", "aoû", "sep", "oct", "nov", "déc"},
		Days:        [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		DaysShort:   [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
		Units: [6]unitNames{
			{"année", "années"}, {"mois", "mois"}, {"semaine", "semaines"},
			{"jour", "jours"}, {"heure", "heures"}, {"minute", "minutes"},
		},
		Plural: pluralAboveOne,
	},
	{
		Tag:         language.German,
		Months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthsShort: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		Days:        [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		DaysShort:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		Units: [6]unitNames{
			{"Jahr", "Jahre"}, {"Monat", "Monate"}, {"Woche", "Wochen"},
			{"Tag", "Tage"}, {"Stunde", "Stunden"}, {"Minute", "Minuten"},
		},
		Plural: pluralNotOne,
	},
	{
		Tag:         language.Spanish,
		Months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		Days:        [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		DaysShort:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		Units: [6]unitNames{
			{"año", "años"}, {"mes", "meses"}, {"semana", "semanas"},
			{"día", "días"}, {"hora", "horas"}, {"minuto", "minutos"},
		},
		Plural: pluralNotOne,
	},
	{
		Tag:         language.Portuguese,
		Months:      [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		MonthsShort: [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		Days:        [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		DaysShort:   [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		Units: [6]unitNames{
			{"ano", "anos"}, {"mês", "meses"}, {"semana", "semanas"},
			{"dia", "dias"}, {"hora", "horas"}, {"minuto", "minutos"},
		},
		Plural: pluralAboveOne,
	},
	{
		Tag:         language.Italian,
		Months:      [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		MonthsShort: [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		Days:        [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		DaysShort:   [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		Units: [6]unitNames{
			{"anno", "anni"}, {"mese", "mesi"}, {"settimana", "settimane"},
			{"giorno", "giorni"}, {"ora", "ore"}, {"minuto", "minuti"},
		},
		Plural: pluralNotOne,
	},
	{
		Tag:         language.Dutch,
		Months:      [12]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
		MonthsShort: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
		Days:        [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		DaysShort:   [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		Units: [6]unitNames{
			{"jaar", "jaar"}, {"maand", "maanden"}, {"week", "weken"},
			{"dag", "dagen"}, {"uur", "uur"}, {"minuut", "minuten"},
		},
		Plural: pluralNotOne,
	},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// LocaleFor returns the closest supported locale for a BCP 47 tag
// ("pt-BR" matches Portuguese). Empty, malformed or unsupported tags fall
// back to English.
func LocaleFor(lang string) *Locale {
	if lang == "" {
		return english
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return english
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return english
	}
	return locales[idx]
}
