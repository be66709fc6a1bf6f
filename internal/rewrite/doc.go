// Package rewrite implements the CUDA-to-HIP text transformation passes:
// whole-token identifier substitution driven by a mapping table, triple-chevron
// kernel-launch rewriting, and assert neutralization.
//
// The passes operate on raw text with targeted pattern matching, not on a
// syntax tree. That choice carries documented limitations, accepted on
// purpose rather than solved with a real lexer:
//
//   - Matches inside string literals and comments are not distinguished from
//     code.
//   - Assert neutralization is line-scoped; a multi-line assert invocation
//     stays partially active on its continuation lines.
//   - Kernel-launch detection fires only on an identifier (plus optional
//     template arguments) immediately adjacent to the <<< marker, and does not
//     parse nested template syntax.
//
// Each pass is text-in, text-out: findings (unsupported symbols, emitted
// launch prefixes) are returned as plain values for the caller to aggregate,
// so no pass holds or threads mutable state. A future tokenizer-based
// implementation could replace the matchers without changing this contract.
package rewrite
