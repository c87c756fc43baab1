package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func expectedMD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestChecksumReaderProxy_Read(t *testing.T) {
	proxy := NewMD5ReaderProxy(strings.NewReader("hello world"))

	buf := make([]byte, 5)
	n, err := proxy.Read(buf)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("Expected to read 5 bytes, got %d", n)
	}
	if string(buf) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", string(buf))
	}
	if proxy.BytesRead() != 5 {
		t.Errorf("Expected BytesRead 5, got %d", proxy.BytesRead())
	}
}

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := "[Interface]\nListenPort = 51820\n"
	proxy := NewMD5ReaderProxy(strings.NewReader(testData))

	content, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(content) != testData {
		t.Errorf("Expected content to pass through unchanged")
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if checksum != expectedMD5(testData) {
		t.Errorf("Expected checksum %s, got %s", expectedMD5(testData), checksum)
	}
}

func TestChecksumReaderProxy_Error(t *testing.T) {
	readErr := errors.New("read failed")
	proxy := NewMD5ReaderProxy(&errorReader{err: readErr})

	_, err := proxy.Read(make([]byte, 10))
	if err != readErr {
		t.Errorf("Expected read error to be passed through, got %v", err)
	}

	checksum, _ := proxy.GetChecksum()
	if checksum != expectedMD5("") {
		t.Errorf("Expected checksum of empty input, got %s", checksum)
	}
}

func TestSumString(t *testing.T) {
	if got := SumString("abc"); got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("SumString(abc) = %s", got)
	}
	if SumString("a") == SumString("b") {
		t.Error("Expected different checksums for different input")
	}
}
