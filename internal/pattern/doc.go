// Package pattern parses `.env*` file naming patterns and expands them into
// the ordered list of layer file names.
//
// A pattern is literal text with up to two optional segments written in
// square brackets. Each segment holds exactly one placeholder word,
// optionally surrounded by non-word characters:
//
//	.env[.node_env][.local]      -> .env, .env.local, .env.<env>, .env.<env>.local
//	.env/[local/]env[.node_env]  -> .env/env, .env/local/env, .env/env.<env>, .env/local/env.<env>
//
// The placeholder `node_env` is replaced with the environment name and the
// placeholder `local` stays as is. Layers are always produced from the most
// generic to the most specific one, whatever the textual order of the
// segments inside the pattern.
package pattern
