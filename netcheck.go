package main

import (
	"fmt"
	"net"
	"time"
)

const (
	probeAddr    = "8.8.8.8:53" // Google public DNS
	probeTimeout = 2 * time.Second
)

// online reports whether a well-known public host answers.
func online() bool {
	conn, err := net.DialTimeout("tcp", probeAddr, probeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// networkCheck makes the user type YES to go on while connected.
func (s *session) networkCheck(probe func() bool) error {
	if !probe() {
		s.log.Printf("no route to %s, assuming offline", probeAddr)
		return nil
	}

	fmt.Fprint(s.out, s.style.red+s.style.bold+`
******************************************************************
*             WARNING: YOU ARE CONNECTED TO THE INTERNET         *
*                    THIS IS A REALLY BAD IDEA                   *
*                                                                *
* If there is by chance malware on your computer your wallet     *
* might be exposed and lost. Unless you are just testing this    *
* utility, please disconnect, and wipe the computer after usage  *
******************************************************************
`+s.style.zero)

	ok, err := s.confirm("\nAre you sure you want to continue? (type \"YES\" to continue): ")
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}
	return nil
}
