// Package translator is the syntax-directed core of the source
// converter: given a token stream in the source language, it produces
// the equivalent token stream in the target language by recursively
// classifying and re-emitting each construct it recognizes.
//
// The design favors a single recursive entry point, Translate, over a
// family of mutually-recursive parse functions with their own advance
// logic: every construct, a declaration, a function, a loop, a
// branch, is carved out as a token span and handed to a dedicated
// translator, several of which recurse back into Translate for their
// nested bodies. Translation state that would otherwise live in
// package-level globals lives instead on the Context a Translator
// owns, snapshotted and restored around recursive calls the way a
// parser's block stack would be.
package translator
