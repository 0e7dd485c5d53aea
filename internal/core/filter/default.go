package filter

// Default is a ready-to-use Filter with stock settings over the embedded corpus.
// It is an ordinary value: callers that need isolation build their own with New
var Default = MustNew()
