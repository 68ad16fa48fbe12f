package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"ringbuf/pkg/ringbuf"
)

var logger = log.New(os.Stdout, "", log.Ldate|log.Ltime|log.Lshortfile)

func main() {
	capacity := flag.Int("capacity", 0, "number of bytes the buffer holds")
	flag.Parse()
	if *capacity == 0 {
		fmt.Println("usage: ringbuf --capacity <n>")
		return
	}

	rb, err := ringbuf.New(*capacity)
	if err != nil {
		fmt.Println(err)
		fmt.Println("usage: ringbuf --capacity <n>")
		return
	}
	logger.Printf("Ring buffer ready with %d slots\n", rb.Cap())

	repl := ringbuf.BufRepl(rb)
	repl.Run()
}
