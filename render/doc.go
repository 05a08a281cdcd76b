// Package render presents mapped schemas: as JSON or YAML data, or as a
// report produced by an HTML or text template.
//
// The default HTML template is embedded in the binary. It lists every schema
// with its properties and also embeds the schemas as JSON for client-side
// scripts. Custom templates receive the same [Data] and helper functions:
//
//   - title: title-cases a string
//   - join: joins a string slice with a separator
//   - required: "required", "optional", or "" when the flag does not apply
//   - example: the example value encoded as JSON, or "" when there is none
//
// Example:
//
//	r, err := render.New(render.WithTitle("Users API"))
//	if err != nil {
//	    return err
//	}
//	return r.Render(w, schemas)
package render
