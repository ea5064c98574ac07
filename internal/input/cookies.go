package input

import (
	"bufio"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// LoadCookies reads a Netscape-format cookies.txt file into a cookie
// jar. Comment and malformed lines are skipped, matching how browsers
// treat exported cookie files.
func LoadCookies(name string) (http.CookieJar, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, err
	}

	s := bufio.NewScanner(file)
	for s.Scan() {
		line := s.Text()
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}

		expires, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			continue
		}

		cookie := http.Cookie{
			Name:    fields[5],
			Value:   fields[6],
			Path:    fields[2],
			Domain:  fields[0],
			Expires: time.Unix(expires, 0),
			Secure:  fields[3] == "TRUE",
		}

		scheme := "http"
		if cookie.Secure {
			scheme = "https"
		}
		host := strings.TrimPrefix(cookie.Domain, ".")
		if host == "" {
			continue
		}

		u, err := url.Parse(scheme + "://" + host + "/")
		if err != nil {
			continue
		}
		jar.SetCookies(u, []*http.Cookie{&cookie})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return jar, nil
}

// LoadSession reads a session token from the first line of a file,
// e.g. a key file holding the calendar site's session cookie value.
func LoadSession(name string) (string, error) {
	file, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	s := bufio.NewScanner(file)
	s.Buffer(nil, 1024)
	if s.Scan() {
		return strings.TrimSpace(s.Text()), nil
	}
	return "", s.Err()
}
