package telemetry

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Output-channel offsets in the Speeduino realtime data block.
const (
	offsetRPM = 14  // uint16 LE
	offsetTPS = 25  // 0.5% units
	offsetVSS = 100 // uint16 LE, km/h
)

// minFrameLen covers every offset we read.
const minFrameLen = offsetVSS + 2

// Serial reads live engine data from a Speeduino-style ECU over the
// secondary serial 'n' protocol: send 'n', receive 'n' 0x32 <len> <data>.
// The ECU does not report tire slip, so TireSlip is always 0.
type Serial struct {
	portPath  string
	baudRate  int
	port      serial.Port
	connected bool
}

// NewSerial creates a serial provider for the given port and baud rate.
func NewSerial(portPath string, baudRate int) *Serial {
	if baudRate <= 0 {
		baudRate = 115200
	}
	return &Serial{
		portPath: portPath,
		baudRate: baudRate,
	}
}

func (s *Serial) Name() string { return fmt.Sprintf("ECU (%s)", s.portPath) }

// Connect opens the serial port and verifies the ECU answers a poll.
func (s *Serial) Connect() error {
	port, err := serial.Open(s.portPath, &serial.Mode{BaudRate: s.baudRate})
	if err != nil {
		return fmt.Errorf("open %s: %w", s.portPath, err)
	}
	if err := port.SetReadTimeout(500 * time.Millisecond); err != nil {
		port.Close()
		return fmt.Errorf("set read timeout: %w", err)
	}

	s.port = port
	s.connected = true

	if _, err := s.Poll(); err != nil {
		s.Close()
		return fmt.Errorf("handshake: %w", err)
	}
	return nil
}

func (s *Serial) Close() error {
	s.connected = false
	if s.port != nil {
		err := s.port.Close()
		s.port = nil
		return err
	}
	return nil
}

func (s *Serial) Poll() (Frame, error) {
	if !s.connected || s.port == nil {
		return Frame{}, ErrNotConnected
	}

	s.port.ResetInputBuffer()
	if _, err := s.port.Write([]byte{'n'}); err != nil {
		return Frame{}, fmt.Errorf("poll write: %w", err)
	}

	// Header: echo 'n', type 0x32, payload length
	header := make([]byte, 3)
	if err := s.readFull(header); err != nil {
		return Frame{}, fmt.Errorf("poll header: %w", err)
	}
	if header[0] != 'n' || header[1] != 0x32 {
		return Frame{}, fmt.Errorf("unexpected response %#x %#x", header[0], header[1])
	}

	data := make([]byte, int(header[2]))
	if err := s.readFull(data); err != nil {
		return Frame{}, fmt.Errorf("poll payload: %w", err)
	}
	return parseFrame(data)
}

// readFull reads until buf is filled, tolerating the short reads serial
// ports deliver.
func (s *Serial) readFull(buf []byte) error {
	deadline := time.Now().Add(1 * time.Second)
	got := 0
	for got < len(buf) {
		if time.Now().After(deadline) {
			return ErrShortFrame
		}
		n, err := s.port.Read(buf[got:])
		if err != nil && err != io.EOF {
			return err
		}
		if n == 0 && err == io.EOF {
			return ErrShortFrame
		}
		got += n
	}
	return nil
}

func parseFrame(d []byte) (Frame, error) {
	if len(d) < minFrameLen {
		return Frame{}, ErrShortFrame
	}

	rpm := binary.LittleEndian.Uint16(d[offsetRPM : offsetRPM+2])
	tps := float64(d[offsetTPS]) * 0.5 // percent
	vss := binary.LittleEndian.Uint16(d[offsetVSS : offsetVSS+2])

	return Frame{
		RPM:   float64(rpm),
		Load:  tps / 100,
		Speed: float64(vss),
	}, nil
}
