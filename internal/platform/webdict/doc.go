// Package webdict implements dictionary.Lookup over public web dictionaries:
// dictionaryapi.dev, its freedictapi mirror and Wiktionary (REST definitions
// first, then the action API page extract). Sources are asked in that order
// and the first one that knows the term wins.
package webdict
