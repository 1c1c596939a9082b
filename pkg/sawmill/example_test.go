package sawmill_test

import (
	"fmt"

	"github.com/tailwater/sawmill/pkg/sawmill"
)

func ExampleParseLine() {
	entry, ok := sawmill.ParseLine(`127.0.0.1 - - [10/Oct/2023:13:55:36 +0000] "GET /api/users HTTP/1.1" 200 1234`)
	if !ok {
		fmt.Println("line did not parse")
		return
	}

	fmt.Printf("%s %s %s\n", entry.IP, entry.Method, entry.Path)
	fmt.Printf("status=%d size=%d\n", entry.Status, entry.Size)
	// Output:
	// 127.0.0.1 GET /api/users
	// status=200 size=1234
}
