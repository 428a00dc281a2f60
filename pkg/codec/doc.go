// Package codec converts between wire buffers and structured messages.
//
// Decoding reads the frequency-class header, resolves the template through a
// template.Lookup and walks its blocks with a single cursor:
//
//	c := codec.New(tbl)
//	msg, err := c.Parse(buf)
//	agent, err := msg.Value("AgentData", "AgentID")
//
// Encoding takes block data keyed by block and field name and emits the
// header followed by every block in template order:
//
//	pkt, err := c.Build("ChatFromViewer", codec.BlockData{
//		"AgentData": {{"AgentID": id, "SessionID": session}},
//		"ChatData":  {{"Message": "Hello", "Type": 1, "Channel": 0}},
//	})
//
// A Codec holds no mutable state and may be shared by many goroutines.
// Buffers handed to Parse must already be zero-decoded; Packet.NeedsZeroencode
// tells the transport whether to zero-encode a built buffer.
//
// Every failure is an *Error carrying a Kind and the message, block and field
// involved. errors.Is matches the kind sentinels (ErrBufferUnderrun, ...).
package codec
