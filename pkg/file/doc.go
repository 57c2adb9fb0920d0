// Package file stores exported email files in a local directory or an S3
// bucket behind one Storage interface.
//
//	store, err := file.NewLocalStorage("dist/emails", "/emails/")
//	f, err := store.Put(ctx, "email-1/fr.html", html, file.ContentTypeHTML)
//	fmt.Println(f.URL) // /emails/email-1/fr.html
//
// Paths are slash-separated and relative to the storage root. Paths that
// escape the root are rejected with ErrInvalidPath.
package file
