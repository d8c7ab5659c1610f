// Package site serves the public pages of the retreat site: the brand
// landing page, the retreat page and the registration form.
//
// Page copy lives in an embedded YAML document (content.yaml) and is
// rendered through html/template files wrapped as templ components, so the
// same components work with the handler package's Templ responses and
// Datastar patches.
//
// The registration form posts to the registration module with Datastar.
// Views.RegistrationViews supplies the fragments that module patches into
// #registration-status and #registration-error.
package site
