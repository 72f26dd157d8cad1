package validator

import govalidator "github.com/go-playground/validator/v10"

var v = govalidator.New()

// Validate runs the struct's validate tags and returns a field-to-tag map,
// or nil when every field passes.
func Validate(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(govalidator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
