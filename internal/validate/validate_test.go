package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cse-motors/internal/validate"
)

func TestField_TrimYTitleCase(t *testing.T) {
	res := validate.New()
	v := res.Field("inv_make", "  toyota land CRUISER ").
		TitleCase().
		MinLen(3, "Make must be at least 3 characters.").
		Value()

	assert.True(t, res.Valid())
	assert.Equal(t, "Toyota Land Cruiser", v)
}

func TestField_ShortCircuitPorCampo(t *testing.T) {
	// Un campo vacío solo reporta la primera regla violada, no la cascada.
	res := validate.New()
	res.Field("inv_color", "").
		Required("Color is required.").
		Alpha("Color must be letters only.")

	require.Len(t, res.Violations(), 1)
	assert.Equal(t, "Color is required.", res.Violations()[0].Message)
}

func TestResult_AcumulaEntreCampos(t *testing.T) {
	// Las violaciones se acumulan entre campos: todas en un solo round-trip.
	res := validate.New()
	res.Field("inv_make", "x").MinLen(3, "Make must be at least 3 characters.")
	res.Field("inv_year", "1899").IntRange(1900, 2099, "Year must be a valid 4-digit year.")
	res.Field("inv_miles", "-5").IntMin(0, "Miles must be numeric.")

	assert.False(t, res.Valid())
	assert.Equal(t, []string{
		"Make must be at least 3 characters.",
		"Year must be a valid 4-digit year.",
		"Miles must be numeric.",
	}, res.Messages())
}

func TestField_IntRange(t *testing.T) {
	res := validate.New()
	f := res.Field("inv_year", "2021").IntRange(1900, 2099, "Year must be a valid 4-digit year.")

	assert.True(t, res.Valid())
	assert.Equal(t, 2021, f.Int())

	res2 := validate.New()
	res2.Field("inv_year", "no-numerico").IntRange(1900, 2099, "Year must be a valid 4-digit year.")
	assert.False(t, res2.Valid())
}

func TestField_DecimalMin(t *testing.T) {
	res := validate.New()
	f := res.Field("inv_price", "18999.50").DecimalMin(decimal.Zero, "Price must be a valid number.")

	assert.True(t, res.Valid())
	assert.True(t, f.Decimal().Equal(decimal.RequireFromString("18999.50")))

	res2 := validate.New()
	res2.Field("inv_price", "-1").DecimalMin(decimal.Zero, "Price must be a valid number.")
	assert.False(t, res2.Valid())
}

func TestField_Alpha(t *testing.T) {
	res := validate.New()
	res.Field("classification_name", "SUV").Required("req").Alpha("letters only")
	assert.True(t, res.Valid())

	res2 := validate.New()
	res2.Field("classification_name", "Off Road!").Required("req").Alpha("letters only")
	assert.False(t, res2.Valid())
}

func TestField_Email(t *testing.T) {
	res := validate.New()
	res.Field("account_email", " User@Example.COM ").Lower().Email("A valid email is required.")
	assert.True(t, res.Valid())

	res2 := validate.New()
	res2.Field("account_email", "no-es-email").Email("A valid email is required.")
	assert.False(t, res2.Valid())
}

func TestField_PoliticaDePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Sup3r!LongPassword", true},
		{"corta1!", false},             // menos de 12
		{"sinmayusculas1!aaaa", false}, // sin mayúscula
		{"SinDigitos!!aaaa", false},    // sin dígito
		{"SinEspecial12345", false},    // sin especial
	}
	for _, tc := range cases {
		res := validate.New()
		res.Field("account_password", tc.password).Password("Password does not meet requirements.")
		assert.Equal(t, tc.ok, res.Valid(), "password %q", tc.password)
	}
}

func TestResult_AddPreCheckExterno(t *testing.T) {
	// Los pre-checks de unicidad (I/O contra storage) entran por Add.
	res := validate.New()
	res.Field("classification_name", "suv").TitleCase().Alpha("letters only")
	res.Add("classification_name", "Classification exists. Please enter a different classification.")

	assert.False(t, res.Valid())
	assert.Contains(t, res.Messages(), "Classification exists. Please enter a different classification.")
}
