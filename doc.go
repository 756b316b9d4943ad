// Package languages is a minimal internationalization text-lookup library.
// It loads per-language key/value text files from a directory, indexes them by
// language code and exposes typed lookups of individual text entries.
//
// The package allows you to:
//
//   - Load language bundles from the local file-system or any fs.FS, including
//     embedded filesystems.
//   - Choose between JSON, TOML and YAML source files behind one unified Value
//     representation, selected via the Config format.
//   - Look up texts in two stages (language code, then text key) with explicit
//     sentinel errors instead of silent fallbacks.
//   - Build the configuration programmatically or from environment variables.
//
// # Architecture
//
// A Config names the source directory, the ordered list of language codes and
// the file format. Load resolves <directory>/<code>.<ext> for every configured
// code, reads the file, hands the content to the format's Decoder and collects
// the resulting key-to-Value mappings into a Languages index. Decoders are
// interchangeable implementations of one interface, so new formats do not
// touch the loading code.
//
// Loading is all-or-nothing: a missing or malformed file fails the whole Load
// call and no partial Languages is returned. Once built, Languages and every
// LanguageTexts bundle are immutable, which makes concurrent readers safe
// without locking.
//
// # Usage
//
// With a languages/en.json file containing {"hello_world": "Hello world!"}:
//
//	cfg := languages.Default()
//	if err := cfg.AddLanguage("en"); err != nil {
//		log.Fatalf("configuring languages: %v", err)
//	}
//
//	texts, err := languages.Load(context.Background(), cfg)
//	if err != nil {
//		log.Fatalf("loading languages: %v", err)
//	}
//
//	greeting, err := texts.TryGetTextFromLanguage("en", "hello_world")
//	if err != nil {
//		log.Fatalf("looking up text: %v", err)
//	}
//	msg, _ := greeting.GetString()
//	// msg == "Hello world!"
//
// # Error Handling
//
// Sentinel error values allow fine-grained checks with errors.Is, e.g.:
//
//	if errors.Is(err, languages.ErrTextNotFound) {
//	    // fall back to the default language, report the gap, etc.
//	}
//
// Nothing is retried or logged internally; the embedding application decides
// user-visible behaviour.
package languages
