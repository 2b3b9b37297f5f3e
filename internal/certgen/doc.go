// Package certgen renders a single warranty certificate from local files.
//
// It runs the same formatting, rendering, composing and encryption stages as
// the generate function but reads the record, template and font from disk
// and never talks to AWS. Typical use is checking a new template:
//
//	certgen -record r.json -template format.pdf -font NotoSansJP-Light.ttf -out out.pdf
//
// The owner password comes from OWNER_PASSWORD or, when unset, an
// interactive prompt.
package certgen
