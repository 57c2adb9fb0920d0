// Package i18n loads translated message catalogs and resolves locales for
// email rendering.
//
// Catalog files are YAML or JSON documents keyed by language at the top level;
// everything below is a tree of message ids:
//
//	fr:
//	  welcome:
//	    title: "Bienvenue sur ZKDMS"
//	    steps:
//	      one: "%{count} étape"
//	      other: "%{count} étapes"
//
// A TranslationAdapter (MapAdapter, FileAdapter, DirectoryAdapter, FSAdapter)
// produces the raw trees and a Store flattens them into immutable per-locale
// Catalogs. Reload swaps every catalog at once, so a render that already
// holds a *Catalog keeps reading the version it started with.
//
// Catalogs are passed explicitly to template content instead of being
// activated globally. Source-language text lives next to the message id in
// the template, and a nil *Catalog simply returns it:
//
//	title := cat.T("welcome.title", "Welcome to ZKDMS")
//
// Locales describes the closed set of locale codes the application renders
// and the source locale used when none is requested.
package i18n
