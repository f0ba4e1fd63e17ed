package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
	"github.com/milk9111/flappy/common"
)

// EncodePCM drains s into signed 16-bit little-endian stereo frames.
func EncodePCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	var (
		out []byte
		buf = make([][2]float64, 512)
	)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = common.Clamp(v, -1, 1)
	return int16(v * math.MaxInt16)
}
