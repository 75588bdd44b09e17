package seed

import _ "embed"

// Campaigns is the default campaign wording loaded by the seeder when no
// file is given.
//
//go:embed campaigns.yaml
var Campaigns []byte
