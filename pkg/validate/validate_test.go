package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerPayload struct {
	Name     string  `json:"name" validate:"required,min=2,max=10"`
	Email    string  `json:"email" validate:"required,email"`
	Age      int     `json:"age" validate:"nullable,integer,gte=18"`
	Price    float64 `json:"price" validate:"nullable,numeric,gt=0"`
	Method   string  `json:"method" validate:"nullable,in=cash,card,upi"`
	Untagged string  `json:"untagged"`
}

func TestStructPasses(t *testing.T) {
	errs := Struct(registerPayload{
		Name:   "Asha",
		Email:  "asha@example.com",
		Age:    30,
		Price:  4.75,
		Method: "upi",
	})
	assert.False(t, HasErrors(errs))
}

func TestRequiredAndEmail(t *testing.T) {
	errs := Struct(registerPayload{Email: "not-an-email"})
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestNullableSkipsEmptyFields(t *testing.T) {
	errs := Struct(registerPayload{Name: "Asha", Email: "a@b.co"})
	assert.False(t, HasErrors(errs))
}

func TestBoundsAndMembership(t *testing.T) {
	errs := Struct(registerPayload{
		Name:   "A",
		Email:  "a@b.co",
		Age:    15,
		Price:  -1,
		Method: "barter",
	})
	assert.Equal(t, "The name must be at least 2 characters.", errs["name"])
	assert.Equal(t, "The age must be greater than or equal to 18.", errs["age"])
	assert.Equal(t, "The price must be greater than 0.", errs["price"])
	assert.Equal(t, "The selected method is invalid.", errs["method"])
}

func TestMaxStringLength(t *testing.T) {
	errs := Struct(registerPayload{
		Name:  "much-too-long-name",
		Email: "a@b.co",
	})
	assert.Equal(t, "The name must not exceed 10 characters.", errs["name"])
}

func TestSplitRulesKeepsInParamsTogether(t *testing.T) {
	rules := splitRules("required,in=cash,card,upi,max=10")
	assert.Equal(t, []string{"required", "in=cash,card,upi", "max=10"}, rules)

	rules = splitRules("nullable,in=dine-in,takeaway")
	assert.Equal(t, []string{"nullable", "in=dine-in,takeaway"}, rules)
}

func TestPointerAndNonStructInputs(t *testing.T) {
	p := &registerPayload{Name: "Asha", Email: "a@b.co"}
	assert.False(t, HasErrors(Struct(p)))

	// Non-struct input is a no-op rather than a panic.
	assert.False(t, HasErrors(Struct("just a string")))
}
