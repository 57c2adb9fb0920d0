// Package qrcode renders PNG QR codes. The preview server uses it to put the
// raw URL of the current render on screen so it can be opened on a phone.
package qrcode
