package problemgen

// EngineVersion is the semantic version of the synthesis rules. The major
// version changes whenever a seed stops reproducing the same questions.
const EngineVersion = "v1.0.0"
