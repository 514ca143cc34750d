// Package wmi provides a stateful session against the Windows Management
// Instrumentation service over COM, plus a small query layer for pulling
// string-valued properties out of CIM classes.
package wmi

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// DefaultNamespace is the WMI namespace holding the hardware classes.
const DefaultNamespace = `root\cimv2`

// ErrNotInitialized is returned when a query is attempted on a session that
// has not been successfully initialized (or has been cleaned up).
var ErrNotInitialized = errors.New("wmi: session not initialized")

// CoInitializeEx reports S_FALSE when COM is already initialized on the
// calling thread; that still requires a balancing CoUninitialize.
const sFalse = uintptr(1)

type sessionState int

const (
	stateUninitialized sessionState = iota
	stateActive
	stateClosed
)

// wbemImpersonationLevelImpersonate lets the WMI provider use the caller's
// security context for local queries.
const wbemImpersonationLevelImpersonate = 3

// Session owns a live connection to the WMI service. Create instances with
// NewSession and pair every Initialize with a deferred Cleanup; Cleanup is
// safe in any state, so the pairing holds on error paths too.
//
// A Session is not safe for concurrent use; callers needing to share one
// across goroutines must serialize access themselves.
type Session struct {
	namespace string
	state     sessionState

	comOwned bool
	unknown  *ole.IUnknown
	locator  *ole.IDispatch
	service  *ole.IDispatch
}

// NewSession creates an unconnected session for the given WMI namespace.
// An empty namespace selects DefaultNamespace.
func NewSession(namespace string) *Session {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Session{namespace: namespace}
}

// Initialize connects the session to the WMI service. It is idempotent: an
// already-active session returns nil without reacquiring anything. On
// failure every resource acquired by this call is released and the session
// stays unconnected.
func (s *Session) Initialize() (err error) {
	if s.state == stateActive {
		return nil
	}

	defer func() {
		if err != nil {
			s.release()
		}
	}()

	if cerr := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); cerr != nil {
		oleCode := cerr.(*ole.OleError).Code()
		if oleCode != ole.S_OK && oleCode != sFalse {
			return fmt.Errorf("wmi: initialize COM: %w", cerr)
		}
	}
	s.comOwned = true

	unknown, cerr := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if cerr != nil {
		return fmt.Errorf("wmi: create locator: %w", cerr)
	}
	s.unknown = unknown

	locator, cerr := unknown.QueryInterface(ole.IID_IDispatch)
	if cerr != nil {
		return fmt.Errorf("wmi: locator dispatch: %w", cerr)
	}
	s.locator = locator

	serviceRaw, cerr := oleutil.CallMethod(locator, "ConnectServer", nil, s.namespace)
	if cerr != nil {
		return fmt.Errorf("wmi: connect %s: %w", s.namespace, cerr)
	}
	s.service = serviceRaw.ToIDispatch()

	if cerr := s.setImpersonation(); cerr != nil {
		return fmt.Errorf("wmi: set security on proxy: %w", cerr)
	}

	s.state = stateActive
	return nil
}

// setImpersonation configures the security blanket on the connected service
// proxy so providers impersonate the calling user.
func (s *Session) setImpersonation() error {
	securityRaw, err := oleutil.GetProperty(s.service, "Security_")
	if err != nil {
		return err
	}
	security := securityRaw.ToIDispatch()
	defer security.Release()

	_, err = oleutil.PutProperty(security, "ImpersonationLevel", wbemImpersonationLevelImpersonate)
	return err
}

// Cleanup releases the connection and tears down COM state. It is idempotent
// and safe to call any number of times, in any order relative to Initialize,
// including on a session whose Initialize failed.
func (s *Session) Cleanup() {
	s.release()
	if s.state == stateActive {
		s.state = stateClosed
	}
}

// Active reports whether the session holds a live connection.
func (s *Session) Active() bool {
	return s.state == stateActive
}

// Namespace returns the WMI namespace this session targets.
func (s *Session) Namespace() string {
	return s.namespace
}

// release frees held COM resources in reverse acquisition order. Every
// field is nil-guarded so partial acquisitions unwind cleanly.
func (s *Session) release() {
	if s.service != nil {
		s.service.Release()
		s.service = nil
	}
	if s.locator != nil {
		s.locator.Release()
		s.locator = nil
	}
	if s.unknown != nil {
		s.unknown.Release()
		s.unknown = nil
	}
	if s.comOwned {
		ole.CoUninitialize()
		s.comOwned = false
	}
}
