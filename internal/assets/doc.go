// Package assets provides the HTML fragment templates and stylesheets used
// when rendering blog content.
//
// A Theme reads assets from any file tree laid out as:
//
//	styles/
//	    {name}.css                 page styles (default.css)
//	templates/
//	    post_list.html             {{ posts }} listing
//	    email_subscribe_form.html  {{ email-signup }} form
//	    document.html              standalone page wrapper
//
// Builtin is the Theme compiled into the binary. OpenTheme serves a
// directory on disk, and Layers stacks loaders so a theme directory can
// override single files while Builtin supplies the rest. NewLoader wires
// the usual stack from an optional directory.
//
// TemplateRenderer sits on top of any AssetLoader. It parses templates with
// html/template on first use, caches them, and renders named fragments.
package assets
