package filelike_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/gobeaver/filelike"
	_ "github.com/gobeaver/filelike/driver/local"
	"github.com/gobeaver/filelike/driver/memory"
)

func ExampleSendFile() {
	src := memory.NewFromBytes([]byte("hello, world"))
	dst := memory.New()

	// Copy everything the source reports
	if !filelike.SendFile(src, dst, -1) {
		fmt.Println("copy failed")
		return
	}

	fmt.Println(string(dst.Bytes()))
	// Output: hello, world
}

func ExampleSendFile_partial() {
	src := memory.NewFromBytes([]byte("hello, world"))
	dst := memory.New()

	// Copy only the first five bytes
	_ = filelike.SendFile(src, dst, 5)

	fmt.Println(string(dst.Bytes()))
	// Output: hello
}

func ExampleReadAll() {
	data, ok := filelike.ReadAll(memory.NewFromBytes([]byte("buffered")))
	fmt.Println(string(data), ok)
	// Output: buffered true
}

func ExampleCopier_SendFile() {
	var progress []int64
	c := filelike.NewCopier(
		filelike.WithBlockSize(4),
		filelike.WithHighWaterMark(8),
		filelike.WithProgress(func(transferred, total int64) {
			progress = append(progress, transferred)
		}),
	)

	n, err := c.SendFile(memory.NewFromBytes([]byte("0123456789")), memory.New(), -1)
	fmt.Println(n, err)
	fmt.Println(progress[len(progress)-1])
	// Output:
	// 10 <nil>
	// 10
}

func ExampleCopier_SendFile_writeFailure() {
	src := memory.NewFromBytes([]byte("data"))
	dst := filelike.NewReadOnly(memory.New())

	_, err := filelike.NewCopier().SendFile(src, dst, -1)
	fmt.Println(filelike.IsReadOnly(err))
	// Output: true
}

func ExampleChecksum() {
	sum, err := filelike.Checksum(memory.NewFromBytes([]byte("hello world")), filelike.ChecksumSHA256)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(sum)
	// Output: b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9
}

func ExampleNewLimited() {
	src := filelike.NewLimited(memory.NewFromBytes([]byte("header|body")), 6)

	data, _ := filelike.ReadAll(src)
	fmt.Println(string(data))
	// Output: header
}

func ExampleOpen() {
	dir, err := os.MkdirTemp("", "filelike-example")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := &filelike.Config{Driver: "local", LocalBasePath: dir}

	// Drivers register themselves when their package is imported
	dst, err := filelike.Open(cfg, "greeting.txt", os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	src := filelike.NewReaderStream(strings.NewReader("hi there"), 8)
	ok := filelike.SendFile(src, dst, -1)
	_ = dst.Close()

	f, _ := filelike.Open(cfg, "greeting.txt", os.O_RDONLY)
	defer f.Close()
	data, _ := filelike.ReadAll(f)

	fmt.Println(ok, string(data))
	// Output: true hi there
}
