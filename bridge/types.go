package bridge

// Bridge is a logical directed data connection to be routed between two
// slots, identified by a unique name.
type Bridge struct {
	Name  string
	Src   string // source slot name
	Dst   string // destination slot name
	Width int    // data width in bits
}
