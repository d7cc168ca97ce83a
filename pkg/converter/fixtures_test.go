package converter

import "encoding/binary"

// buildSMF assembles a format 1 MIDI file with one track per event list.
// Each event is a raw channel message preceded by a zero delta time.
func buildSMF(tracks ...[][]byte) []byte {
	data := []byte("MThd")
	data = binary.BigEndian.AppendUint32(data, 6)
	data = binary.BigEndian.AppendUint16(data, 1)
	data = binary.BigEndian.AppendUint16(data, uint16(len(tracks)))
	data = binary.BigEndian.AppendUint16(data, 480)

	for _, events := range tracks {
		var body []byte
		for _, ev := range events {
			body = append(body, 0x00)
			body = append(body, ev...)
		}
		body = append(body, 0x00, 0xFF, 0x2F, 0x00) // end of track

		data = append(data, "MTrk"...)
		data = binary.BigEndian.AppendUint32(data, uint32(len(body)))
		data = append(data, body...)
	}
	return data
}

func noteOn(key, velocity byte) []byte {
	return []byte{0x90, key, velocity}
}

func noteOff(key byte) []byte {
	return []byte{0x80, key, 0x40}
}

// truncated drops the last n bytes of data, leaving the final track unterminated
func truncated(data []byte, n int) []byte {
	return data[:len(data)-n]
}
