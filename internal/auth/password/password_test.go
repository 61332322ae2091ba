package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw123456" {
		t.Fatalf("hash must not equal the plaintext secret")
	}
	if !Verify("pw123456", hash) {
		t.Fatalf("expected secret to verify against its own hash")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	hash, err := Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if Verify("battery-staple", hash) {
		t.Fatalf("wrong secret must not verify")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h1, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same secret must differ (random salt)")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if Verify("anything", "") {
		t.Fatalf("empty hash must not verify")
	}
}
