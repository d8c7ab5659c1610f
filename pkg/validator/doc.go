// Package validator builds validation as a list of rules. Each rule carries
// its own check and the violation it reports; Apply runs them all and
// returns ValidationErrors so a form can show every problem at once.
//
//	err := validator.Apply(
//		validator.Required("firstName", in.FirstName).WithMessage("First name is required"),
//		validator.ValidEmail("email", in.Email),
//		validator.InList("roomOption", in.Room, rooms),
//	)
//	if ve := validator.Extract(err); ve != nil {
//		...
//	}
package validator
