// Package config loads the YAML run configuration that lists the files a
// single bundler run should update.
//
// # Schema
//
//	version: "1"
//	prefix: http://static.company-cdn.com/javascript/
//	strict: false
//	config_func: requirejs.config
//	targets:
//	  - format: json
//	    output: config/local.json
//	  - format: js
//	    output: public/config.js
//	    markers:
//	      mapping: "/* paths */"
//	      bundles: "/* bundles */"
//	  - format: html
//	    output: views/layout.html
//	    prefix: /js
//
// Target-level prefix, strict and config_func override the top-level values.
// A target without markers uses the defaults of its format.
package config
