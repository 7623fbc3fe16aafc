// Package validate implementa las reglas declarativas por campo de los
// formularios. La evaluación corta en la primera regla violada de cada campo
// pero acumula violaciones entre campos: el usuario ve todos los problemas
// del formulario en un solo round-trip.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	alphaRx = regexp.MustCompile(`^[A-Za-z]+$`)
	emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Violation es una regla incumplida de un campo concreto.
type Violation struct {
	Field   string
	Message string
}

// Result acumula las violaciones de un formulario.
type Result struct {
	violations []Violation
}

// New crea un acumulador vacío.
func New() *Result {
	return &Result{}
}

// Valid indica si el formulario pasó todas las reglas.
func (r *Result) Valid() bool {
	return len(r.violations) == 0
}

// Violations devuelve las violaciones acumuladas en orden de declaración.
func (r *Result) Violations() []Violation {
	return r.violations
}

// Messages devuelve solo los mensajes, para pintarlos en la vista.
func (r *Result) Messages() []string {
	msgs := make([]string, 0, len(r.violations))
	for _, v := range r.violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Add registra una violación externa a las reglas declarativas, típicamente
// un pre-check de unicidad que requiere leer storage durante la validación.
func (r *Result) Add(field, message string) {
	r.violations = append(r.violations, Violation{Field: field, Message: message})
}

// Field inicia la cadena de reglas de un campo. El valor llega ya trimmed:
// todo formulario del sitio normaliza espacios antes de validar.
func (r *Result) Field(name, value string) *Field {
	return &Field{r: r, name: name, value: strings.TrimSpace(value)}
}

// Field es un campo del formulario con su cadena de reglas.
// Tras la primera regla violada, las siguientes son no-ops (short-circuit por campo).
type Field struct {
	r      *Result
	name   string
	value  string
	intVal int
	decVal decimal.Decimal
	failed bool
}

func (f *Field) fail(msg string) {
	f.failed = true
	f.r.Add(f.name, msg)
}

// ── Normalizadores ────────────────────────────────────────────────────────────

// TitleCase capitaliza cada palabra ("toyota corolla" -> "Toyota Corolla").
func (f *Field) TitleCase() *Field {
	if f.failed || f.value == "" {
		return f
	}
	f.value = cases.Title(language.AmericanEnglish).String(strings.ToLower(f.value))
	return f
}

// Lower normaliza a minúsculas (emails).
func (f *Field) Lower() *Field {
	f.value = strings.ToLower(f.value)
	return f
}

// ── Reglas ────────────────────────────────────────────────────────────────────

// Required exige valor no vacío.
func (f *Field) Required(msg string) *Field {
	if f.failed {
		return f
	}
	if f.value == "" {
		f.fail(msg)
	}
	return f
}

// MinLen exige una longitud mínima en runas.
func (f *Field) MinLen(n int, msg string) *Field {
	if f.failed {
		return f
	}
	if len([]rune(f.value)) < n {
		f.fail(msg)
	}
	return f
}

// Alpha exige solo letras, sin espacios ni caracteres especiales.
func (f *Field) Alpha(msg string) *Field {
	if f.failed {
		return f
	}
	if !alphaRx.MatchString(f.value) {
		f.fail(msg)
	}
	return f
}

// Email exige formato básico de email.
func (f *Field) Email(msg string) *Field {
	if f.failed {
		return f
	}
	if !emailRx.MatchString(f.value) {
		f.fail(msg)
	}
	return f
}

// IntRange exige un entero dentro de [min, max].
func (f *Field) IntRange(min, max int, msg string) *Field {
	if f.failed {
		return f
	}
	n, err := strconv.Atoi(f.value)
	if err != nil || n < min || n > max {
		f.fail(msg)
		return f
	}
	f.intVal = n
	return f
}

// IntMin exige un entero >= min.
func (f *Field) IntMin(min int, msg string) *Field {
	if f.failed {
		return f
	}
	n, err := strconv.Atoi(f.value)
	if err != nil || n < min {
		f.fail(msg)
		return f
	}
	f.intVal = n
	return f
}

// DecimalMin exige un decimal >= min (precios).
func (f *Field) DecimalMin(min decimal.Decimal, msg string) *Field {
	if f.failed {
		return f
	}
	d, err := decimal.NewFromString(f.value)
	if err != nil || d.LessThan(min) {
		f.fail(msg)
		return f
	}
	f.decVal = d
	return f
}

// Password exige la política del sitio: mínimo 12 caracteres con al menos
// una mayúscula, un dígito y un carácter especial.
func (f *Field) Password(msg string) *Field {
	if f.failed {
		return f
	}
	var upper, digit, special bool
	for _, r := range f.value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	if len([]rune(f.value)) < 12 || !upper || !digit || !special {
		f.fail(msg)
	}
	return f
}

// ── Valores normalizados ──────────────────────────────────────────────────────

// Value devuelve el valor tras trim y normalizadores; es lo que se persiste
// y también lo que se devuelve a la vista como sticky field.
func (f *Field) Value() string { return f.value }

// Int devuelve el entero parseado por IntRange/IntMin (cero si el campo falló).
func (f *Field) Int() int { return f.intVal }

// Decimal devuelve el decimal parseado por DecimalMin (cero si el campo falló).
func (f *Field) Decimal() decimal.Decimal { return f.decVal }
