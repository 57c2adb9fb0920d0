// Package export renders every template in every configured locale and
// writes the results, plus a manifest.json index, to a file.Storage.
//
// Layout:
//
//	manifest.json
//	email-1/en.html
//	email-1/en.txt
//	email-1/fr.html
//	...
package export
