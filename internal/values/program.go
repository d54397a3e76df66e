package values

// Program is a sequence of already-built Exprs to run one at a time
// against a shared environment, the way a REPL would feed parsed top-level
// forms, or an embedder (cmd/amb's demo subcommand) builds directly with
// Go constructors.
type Program []Expr
