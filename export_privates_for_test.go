package bifid

// Exported aliases so the external test package can exercise the
// period transforms directly.
var (
	Fractionate   = fractionate
	Defractionate = defractionate
)
