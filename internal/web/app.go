// Package web embeds the single-page browser client.
//
// The inline script keeps the controller (state machine, validation,
// error classification, retry replay) separate from the DOM bindings so
// the page logic stays swappable and the transitions stay auditable:
// idle -> submitting on submit, submitting -> idle on success,
// submitting -> error on failure, error -> submitting on retry,
// error -> idle on dismiss.
package web

// AppHTML is served for every non-API path.
const AppHTML = `<!DOCTYPE html>
<html lang="en" class="dark">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ToneRelay — rewrite your text, keep your facts</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-900 text-gray-100 min-h-screen">
    <div class="max-w-3xl mx-auto px-4 py-10">
        <div class="flex justify-between items-end mb-6">
            <div>
                <h1 class="text-3xl font-bold">🎛️ ToneRelay</h1>
                <p class="text-gray-400 mt-1">Rewrite any text as formal or casual. Facts stay put.</p>
            </div>
            <div class="text-right">
                <div id="usage-count" class="text-2xl font-bold text-blue-400">–</div>
                <div id="usage-message" class="text-xs text-gray-500"></div>
            </div>
        </div>

        <div id="error-banner" class="hidden mb-4 bg-red-500/10 border border-red-500/40 rounded-xl px-4 py-3">
            <div class="flex justify-between items-center gap-3">
                <div id="error-text" class="text-red-300 text-sm"></div>
                <div class="flex gap-2 shrink-0">
                    <button id="retry-btn" class="text-xs bg-red-600 hover:bg-red-500 px-3 py-1.5 rounded-lg">🔁 Retry</button>
                    <button id="dismiss-btn" class="text-xs bg-gray-700 hover:bg-gray-600 px-3 py-1.5 rounded-lg">Dismiss</button>
                </div>
            </div>
        </div>

        <div id="success-toast" class="hidden mb-4 bg-green-500/10 border border-green-500/40 rounded-xl px-4 py-3 text-green-300 text-sm">
            ✅ Rewritten! The result replaced your text below.
        </div>

        <div class="bg-gray-800 rounded-xl border border-gray-700 p-4">
            <textarea id="text-input" rows="10" maxlength="10000"
                placeholder="Paste or type your text here…"
                class="w-full bg-gray-900 border border-gray-700 rounded-lg p-3 text-sm resize-y focus:outline-none focus:border-blue-500"></textarea>
            <div class="flex justify-between items-center mt-2">
                <div id="char-counter" class="text-xs text-gray-500">0 / 10000</div>
                <button id="clear-btn" class="text-xs text-gray-400 hover:text-gray-200">🗑️ Clear</button>
            </div>
            <div class="flex items-center gap-3 mt-4">
                <div class="flex bg-gray-900 rounded-lg border border-gray-700 p-1" id="tone-picker">
                    <button data-tone="formal" class="tone-btn px-4 py-1.5 rounded-md text-sm bg-blue-600 text-white">👔 Formal</button>
                    <button data-tone="casual" class="tone-btn px-4 py-1.5 rounded-md text-sm text-gray-400">😎 Casual</button>
                </div>
                <button id="format-btn" class="ml-auto bg-blue-600 hover:bg-blue-500 disabled:opacity-40 disabled:cursor-not-allowed px-6 py-2 rounded-lg font-medium">
                    ✨ Rewrite
                </button>
            </div>
        </div>

        <p class="text-xs text-gray-600 mt-4 text-center">
            Your text is sent to an AI service for rewriting and is never stored on our servers.
        </p>
    </div>

    <script>
        var MAX_LEN = 10000;
        var DRAFT_KEY = 'tonerelay.draft';
        var DRAFT_RESTORE_PROMPT_LEN = 100;

        // ---- pure controller (no DOM access) ----

        function createController() {
            return {
                state: 'idle',          // idle | submitting | error
                pending: null,          // last submitted { text, tone }
                errorMessage: '',

                canSubmit: function(text) {
                    return this.state !== 'submitting' &&
                        text.trim().length > 0 &&
                        text.length <= MAX_LEN;
                },
                submit: function(text, tone) {
                    if (!this.canSubmit(text)) return false;
                    this.pending = { text: text, tone: tone };
                    this.state = 'submitting';
                    this.errorMessage = '';
                    return true;
                },
                succeed: function() {
                    if (this.state !== 'submitting') return;
                    this.state = 'idle';
                },
                fail: function(message) {
                    if (this.state !== 'submitting') return;
                    this.state = 'error';
                    this.errorMessage = classifyError(message);
                },
                retry: function() {
                    if (this.state !== 'error' || !this.pending) return null;
                    this.state = 'submitting';
                    this.errorMessage = '';
                    return this.pending;
                },
                dismiss: function() {
                    if (this.state !== 'error') return;
                    this.state = 'idle';
                    this.errorMessage = '';
                }
            };
        }

        function classifyError(message) {
            var m = (message || '').toLowerCase();
            if (m.indexOf('failed to fetch') !== -1 || m.indexOf('network') !== -1) {
                return 'Network error — check your connection and try again.';
            }
            if (m.indexOf('timeout') !== -1 || m.indexOf('timed out') !== -1) {
                return 'The request timed out. Please try again.';
            }
            if (m.indexOf('configuration') !== -1) {
                return 'The service is not configured correctly. Please try again later.';
            }
            if (m.indexOf('external') !== -1 || m.indexOf('upstream') !== -1) {
                return 'The rewriting service had a hiccup. Please try again.';
            }
            if (m.indexOf('too long') !== -1) {
                return 'Your text is over the 10,000 character limit.';
            }
            if (m.indexOf('rate limit') !== -1 || m.indexOf('429') !== -1) {
                return 'Too many requests right now — give it a moment and retry.';
            }
            return message || 'Something went wrong. Please try again.';
        }

        // tier: low below 70% of the limit, medium up to 90%, high above
        function counterTier(length) {
            var ratio = length / MAX_LEN;
            if (ratio > 0.9) return 'high';
            if (ratio > 0.7) return 'medium';
            return 'low';
        }

        function formatCount(n) {
            if (n < 1000) return String(n);
            if (n < 999500) return (n / 1000).toFixed(1) + 'k';
            return (n / 1000000).toFixed(1) + 'M';
        }

        // ---- DOM adapter ----

        var ctrl = createController();
        var selectedTone = 'formal';

        var input = document.getElementById('text-input');
        var counter = document.getElementById('char-counter');
        var formatBtn = document.getElementById('format-btn');
        var errorBanner = document.getElementById('error-banner');
        var errorText = document.getElementById('error-text');
        var successToast = document.getElementById('success-toast');
        var toastTimer = null;

        function render() {
            var len = input.value.length;
            counter.textContent = len + ' / ' + MAX_LEN;
            var tier = counterTier(len);
            counter.className = 'text-xs ' + (tier === 'high' ? 'text-red-400' :
                tier === 'medium' ? 'text-yellow-400' : 'text-gray-500');

            formatBtn.disabled = !ctrl.canSubmit(input.value);
            formatBtn.innerHTML = ctrl.state === 'submitting' ? '⏳ Rewriting…' : '✨ Rewrite';

            if (ctrl.state === 'error') {
                errorText.textContent = ctrl.errorMessage;
                errorBanner.classList.remove('hidden');
            } else {
                errorBanner.classList.add('hidden');
            }
        }

        function showToast() {
            successToast.classList.remove('hidden');
            if (toastTimer) clearTimeout(toastTimer);
            toastTimer = setTimeout(function() {
                successToast.classList.add('hidden');
            }, 3000);
        }

        function saveDraft() {
            try { localStorage.setItem(DRAFT_KEY, input.value); } catch (e) {}
        }

        function clearDraft() {
            try { localStorage.removeItem(DRAFT_KEY); } catch (e) {}
        }

        function restoreDraft() {
            var draft = '';
            try { draft = localStorage.getItem(DRAFT_KEY) || ''; } catch (e) {}
            if (!draft) return;
            if (draft.length >= DRAFT_RESTORE_PROMPT_LEN &&
                !confirm('You have an unsaved draft (' + draft.length + ' characters). Restore it?')) {
                clearDraft();
                return;
            }
            input.value = draft;
        }

        async function loadUsage() {
            try {
                var res = await fetch('/usage', { cache: 'no-cache' });
                var data = await res.json();
                document.getElementById('usage-count').textContent = formatCount(data.totalUsage);
                document.getElementById('usage-message').textContent = data.message;
            } catch (e) { /* usage display is best-effort */ }
        }

        async function sendRequest(pending) {
            render();
            try {
                var res = await fetch('/format', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify(pending)
                });
                var data = await res.json();
                if (!res.ok) {
                    ctrl.fail(data.error || ('HTTP ' + res.status));
                    render();
                    return;
                }
                ctrl.succeed();
                input.value = data.formattedText;
                saveDraft();
                showToast();
                loadUsage();
            } catch (e) {
                ctrl.fail(e.message);
            }
            render();
        }

        document.getElementById('tone-picker').addEventListener('click', function(e) {
            var btn = e.target.closest('.tone-btn');
            if (!btn) return;
            selectedTone = btn.dataset.tone;
            document.querySelectorAll('.tone-btn').forEach(function(b) {
                var active = b.dataset.tone === selectedTone;
                b.className = 'tone-btn px-4 py-1.5 rounded-md text-sm ' +
                    (active ? 'bg-blue-600 text-white' : 'text-gray-400');
            });
        });

        formatBtn.addEventListener('click', function() {
            if (!ctrl.submit(input.value, selectedTone)) return;
            sendRequest(ctrl.pending);
        });

        document.getElementById('retry-btn').addEventListener('click', function() {
            var pending = ctrl.retry();
            if (pending) sendRequest(pending);
        });

        document.getElementById('dismiss-btn').addEventListener('click', function() {
            ctrl.dismiss();
            render();
        });

        document.getElementById('clear-btn').addEventListener('click', function() {
            if (input.value && !confirm('Clear your text? This cannot be undone.')) return;
            input.value = '';
            clearDraft();
            render();
        });

        input.addEventListener('input', function() {
            saveDraft();
            render();
        });

        // Advisory only: browsers may ignore it, and the in-flight request
        // cannot be cancelled either way.
        window.addEventListener('beforeunload', function(e) {
            if (ctrl.state === 'submitting') {
                e.preventDefault();
                e.returnValue = '';
            }
        });

        restoreDraft();
        render();
        loadUsage();
    </script>
</body>
</html>
`
