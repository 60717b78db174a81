// Package templates wraps pongo2 for the small amount of templated text the
// generator produces, chiefly the banner written at the top of generated
// source. The built-in templates are embedded; callers can swap in their own
// fs.FS or render inline template strings.
//
// Two filters are registered for every engine: upper_snake turns identifiers
// into constant style names and comment_safe flattens text so it can be
// placed inside a single-line comment.
package templates
