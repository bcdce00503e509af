// Package validator provides composable validation rules that collect
// every failure instead of short-circuiting on the first one.
//
// Rules are plain value checks paired with a field-scoped error message;
// Apply runs them all and returns a ValidationErrors error when any fail:
//
//	err := validator.Apply(
//		validator.RequiredString("name", req.Name),
//		validator.TrimmedMinLen("name", req.Name, 2),
//		validator.EmailAddress("email", req.Email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// report errs.Messages() to the caller
//	}
package validator
